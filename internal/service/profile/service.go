package profile

import (
	"context"

	"counsellor/internal/model"
	"counsellor/internal/repository"
	"counsellor/internal/stage"
)

var ErrNotFound = repository.ErrNotFound

// Update carries the optional profile fields of a PUT request; nil means
// "leave unchanged".
type Update struct {
	FullName              *string             `json:"full_name"`
	CurrentEducationLevel *string             `json:"current_education_level"`
	DegreeMajor           *string             `json:"degree_major"`
	GraduationYear        *int                `json:"graduation_year"`
	GPA                   *float64            `json:"gpa"`
	TargetDegree          *string             `json:"target_degree"`
	TargetField           *string             `json:"target_field"`
	TargetIntakeYear      *int                `json:"target_intake_year"`
	PreferredCountries    *[]string           `json:"preferred_countries"`
	BudgetRange           *string             `json:"budget_range"`
	FundingPlan           *string             `json:"funding_plan"`
	ExamScores            *map[string]float64 `json:"exam_scores"`
	SOPStatus             *string             `json:"sop_status"`
	OnboardingCompleted   *bool               `json:"onboarding_completed"`
	CurrentStage          *string             `json:"current_stage"`
}

// View is a profile plus the account email.
type View struct {
	model.Profile
	Email string `json:"email"`
}

type Service struct {
	profileRepo *repository.ProfileRepository
	userRepo    *repository.UserRepository
	syncer      *stage.Synchronizer
}

func NewService(profileRepo *repository.ProfileRepository, userRepo *repository.UserRepository, syncer *stage.Synchronizer) *Service {
	return &Service{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		syncer:      syncer,
	}
}

// Get returns the user's profile together with their email.
func (s *Service) Get(ctx context.Context, userID int) (*View, error) {
	p, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &View{Profile: *p}
	if u, err := s.userRepo.FindByID(ctx, userID); err == nil {
		view.Email = u.Email
	}
	return view, nil
}

// Apply merges the update into the stored profile, persists it, and then
// synchronizes tasks against the (possibly new) stage. The sync runs
// unconditionally: the stored stage may have drifted from the task set even
// when this update did not touch it.
func (s *Service) Apply(ctx context.Context, userID int, update Update) (*model.Profile, error) {
	p, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil {
		p.FullName = *update.FullName
	}
	if update.CurrentEducationLevel != nil {
		p.CurrentEducationLevel = *update.CurrentEducationLevel
	}
	if update.DegreeMajor != nil {
		p.DegreeMajor = *update.DegreeMajor
	}
	if update.GraduationYear != nil {
		p.GraduationYear = *update.GraduationYear
	}
	if update.GPA != nil {
		p.GPA = update.GPA
	}
	if update.TargetDegree != nil {
		p.TargetDegree = *update.TargetDegree
	}
	if update.TargetField != nil {
		p.TargetField = *update.TargetField
	}
	if update.TargetIntakeYear != nil {
		p.TargetIntakeYear = *update.TargetIntakeYear
	}
	if update.PreferredCountries != nil {
		p.PreferredCountries = *update.PreferredCountries
	}
	if update.BudgetRange != nil {
		p.BudgetRange = *update.BudgetRange
	}
	if update.FundingPlan != nil {
		p.FundingPlan = *update.FundingPlan
	}
	if update.ExamScores != nil {
		p.ExamScores = *update.ExamScores
	}
	if update.SOPStatus != nil {
		p.SOPStatus = *update.SOPStatus
	}
	if update.OnboardingCompleted != nil {
		p.OnboardingCompleted = *update.OnboardingCompleted
	}
	if update.CurrentStage != nil {
		p.CurrentStage = *update.CurrentStage
	}

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := s.syncer.Synchronize(ctx, userID, p.CurrentStage); err != nil {
		return nil, err
	}
	return p, nil
}
