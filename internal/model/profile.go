package model

import "time"

// Profile carries the student's onboarding data plus the system state that
// drives task synchronization (CurrentStage).
type Profile struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`

	FullName              string   `json:"full_name"`
	CurrentEducationLevel string   `json:"current_education_level"`
	DegreeMajor           string   `json:"degree_major"`
	GraduationYear        int      `json:"graduation_year"`
	GPA                   *float64 `json:"gpa"`

	TargetDegree       string   `json:"target_degree"`
	TargetField        string   `json:"target_field"`
	TargetIntakeYear   int      `json:"target_intake_year"`
	PreferredCountries []string `json:"preferred_countries"`

	BudgetRange string `json:"budget_range"`
	FundingPlan string `json:"funding_plan"`

	ExamScores map[string]float64 `json:"exam_scores"`
	SOPStatus  string             `json:"sop_status"`

	OnboardingCompleted bool   `json:"onboarding_completed"`
	CurrentStage        string `json:"current_stage"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
