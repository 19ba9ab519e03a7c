package model

import "time"

// Chat message roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	IsAction  bool      `json:"is_action"`
	CreatedAt time.Time `json:"created_at"`
}
