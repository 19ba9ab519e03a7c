package mq

import "time"

// Routing keys for the domain events this service publishes.
const (
	RoutingUserRegistered   = "user.registered"
	RoutingStageAdvanced    = "stage.advanced"
	RoutingUniversityLocked = "university.locked"
)

type UserRegisteredPayload struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

type StageAdvancedPayload struct {
	UserID     int       `json:"user_id"`
	FromStage  string    `json:"from_stage"`
	ToStage    string    `json:"to_stage"`
	AdvancedAt time.Time `json:"advanced_at"`
}

type UniversityLockedPayload struct {
	UserID       int       `json:"user_id"`
	UniversityID int       `json:"university_id"`
	University   string    `json:"university"`
	LockedAt     time.Time `json:"locked_at"`
}
