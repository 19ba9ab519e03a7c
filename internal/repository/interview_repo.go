package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"counsellor/internal/model"
)

type InterviewRepository struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// Insert saves an interview transcript.
func (r *InterviewRepository) Insert(ctx context.Context, i *model.Interview) error {
	query := `
        INSERT INTO interviews (user_id, interview_type, transcript, university_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	return r.db.QueryRow(ctx, query,
		i.UserID, i.InterviewType, i.Transcript, i.UniversityID,
	).Scan(&i.ID, &i.CreatedAt)
}

// InterviewWithUniversity is an interview row joined with its university name.
type InterviewWithUniversity struct {
	model.Interview
	UniversityName string
}

// ListByUser returns the user's interviews, newest first, optionally filtered
// by mode.
func (r *InterviewRepository) ListByUser(ctx context.Context, userID int, mode string) ([]InterviewWithUniversity, error) {
	query := `
        SELECT i.id, i.user_id, i.interview_type, i.transcript, i.university_id,
               i.created_at, COALESCE(u.name, '')
        FROM interviews i
        LEFT JOIN universities u ON i.university_id = u.id
        WHERE i.user_id = $1
          AND ($2 = '' OR i.interview_type = $2)
        ORDER BY i.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, mode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []InterviewWithUniversity{}
	for rows.Next() {
		var item InterviewWithUniversity
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.InterviewType, &item.Transcript,
			&item.UniversityID, &item.CreatedAt, &item.UniversityName,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
