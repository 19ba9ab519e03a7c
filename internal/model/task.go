package model

import "time"

// Task statuses. The synchronizer only ever writes these two values.
const (
	TaskStatusPending   = "Pending"
	TaskStatusCompleted = "Completed"
)

type Task struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	IsAutoGenerated bool      `json:"is_auto_generated"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}
