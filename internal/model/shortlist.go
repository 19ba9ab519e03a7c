package model

import "time"

// Shortlist categories assigned by the counsellor or the user.
const (
	CategoryDream  = "Dream"
	CategoryTarget = "Target"
	CategorySafe   = "Safe"
)

type ShortlistItem struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	UniversityID int       `json:"university_id"`
	Category     string    `json:"category"`
	IsLocked     bool      `json:"is_locked"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShortlistEntry is a shortlist row joined with its university.
type ShortlistEntry struct {
	ID             int    `json:"id"`
	UniversityID   int    `json:"university_id"`
	UniversityName string `json:"university_name"`
	Country        string `json:"country"`
	Category       string `json:"category"`
	IsLocked       bool   `json:"is_locked"`
}
