package model

import "time"

// Interview modes.
const (
	InterviewModeUniversity = "university"
	InterviewModeVisa       = "visa"
)

type Interview struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	InterviewType string    `json:"interview_type"`
	Transcript    string    `json:"transcript"`
	UniversityID  *int      `json:"university_id"`
	CreatedAt     time.Time `json:"created_at"`
}
