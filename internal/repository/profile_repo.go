package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"counsellor/internal/model"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// CreateEmpty seeds a blank profile for a freshly registered user.
func (r *ProfileRepository) CreateEmpty(ctx context.Context, userID int) error {
	query := `
        INSERT INTO profiles (user_id, current_stage, created_at)
        VALUES ($1, 'Building Profile', NOW())
    `
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

// FindByUserID returns the profile for the given user.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID int) (*model.Profile, error) {
	query := `
        SELECT id, user_id, full_name, current_education_level, degree_major,
               graduation_year, gpa, target_degree, target_field, target_intake_year,
               preferred_countries, budget_range, funding_plan, exam_scores,
               sop_status, onboarding_completed, current_stage, created_at, updated_at
        FROM profiles
        WHERE user_id = $1
    `
	var p model.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.CurrentEducationLevel, &p.DegreeMajor,
		&p.GraduationYear, &p.GPA, &p.TargetDegree, &p.TargetField, &p.TargetIntakeYear,
		&p.PreferredCountries, &p.BudgetRange, &p.FundingPlan, &p.ExamScores,
		&p.SOPStatus, &p.OnboardingCompleted, &p.CurrentStage, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update persists all mutable profile fields.
func (r *ProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	query := `
        UPDATE profiles
        SET full_name = $2, current_education_level = $3, degree_major = $4,
            graduation_year = $5, gpa = $6, target_degree = $7, target_field = $8,
            target_intake_year = $9, preferred_countries = $10, budget_range = $11,
            funding_plan = $12, exam_scores = $13, sop_status = $14,
            onboarding_completed = $15, current_stage = $16, updated_at = NOW()
        WHERE user_id = $1
    `
	tag, err := r.db.Exec(ctx, query,
		p.UserID, p.FullName, p.CurrentEducationLevel, p.DegreeMajor,
		p.GraduationYear, p.GPA, p.TargetDegree, p.TargetField,
		p.TargetIntakeYear, p.PreferredCountries, p.BudgetRange,
		p.FundingPlan, p.ExamScores, p.SOPStatus,
		p.OnboardingCompleted, p.CurrentStage,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStage writes only the current_stage field.
func (r *ProfileRepository) UpdateStage(ctx context.Context, userID int, stage string) error {
	query := `
        UPDATE profiles
        SET current_stage = $2, updated_at = NOW()
        WHERE user_id = $1
    `
	tag, err := r.db.Exec(ctx, query, userID, stage)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
