package model

import "time"

type University struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Country        string    `json:"country"`
	Location       string    `json:"location"`
	TuitionFee     string    `json:"tuition_fee"`
	AcceptanceRate float64   `json:"acceptance_rate"`
	Ranking        *int      `json:"ranking"`
	CreatedAt      time.Time `json:"created_at"`
}
