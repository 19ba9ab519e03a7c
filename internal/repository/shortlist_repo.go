package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"counsellor/internal/model"
)

type ShortlistRepository struct {
	db *pgxpool.Pool
}

func NewShortlistRepository(db *pgxpool.Pool) *ShortlistRepository {
	return &ShortlistRepository{db: db}
}

// Insert adds a university to a user's shortlist.
func (r *ShortlistRepository) Insert(ctx context.Context, s *model.ShortlistItem) error {
	query := `
        INSERT INTO shortlist (user_id, university_id, category, is_locked, notes)
        VALUES ($1, $2, $3, FALSE, $4)
        RETURNING id, created_at
    `
	return r.db.QueryRow(ctx, query,
		s.UserID, s.UniversityID, s.Category, s.Notes,
	).Scan(&s.ID, &s.CreatedAt)
}

// Exists reports whether the user already shortlisted the university.
func (r *ShortlistRepository) Exists(ctx context.Context, userID, universityID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM shortlist WHERE user_id = $1 AND university_id = $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, universityID).Scan(&exists)
	return exists, err
}

// ListByUser returns the user's shortlist joined with university data.
func (r *ShortlistRepository) ListByUser(ctx context.Context, userID int) ([]model.ShortlistEntry, error) {
	query := `
        SELECT s.id, s.university_id, u.name, u.country, s.category, s.is_locked
        FROM shortlist s
        JOIN universities u ON s.university_id = u.id
        WHERE s.user_id = $1
        ORDER BY s.created_at ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.ShortlistEntry{}
	for rows.Next() {
		var e model.ShortlistEntry
		if err := rows.Scan(
			&e.ID, &e.UniversityID, &e.UniversityName, &e.Country, &e.Category, &e.IsLocked,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FindByIDForUser returns the shortlist item only if it belongs to the user.
func (r *ShortlistRepository) FindByIDForUser(ctx context.Context, id, userID int) (*model.ShortlistItem, error) {
	query := `
        SELECT id, user_id, university_id, category, is_locked, notes, created_at
        FROM shortlist
        WHERE id = $1 AND user_id = $2
    `
	var s model.ShortlistItem
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&s.ID, &s.UserID, &s.UniversityID, &s.Category, &s.IsLocked, &s.Notes, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByUniversityForUser returns the shortlist item for a (user, university) pair.
func (r *ShortlistRepository) FindByUniversityForUser(ctx context.Context, userID, universityID int) (*model.ShortlistItem, error) {
	query := `
        SELECT id, user_id, university_id, category, is_locked, notes, created_at
        FROM shortlist
        WHERE user_id = $1 AND university_id = $2
    `
	var s model.ShortlistItem
	err := r.db.QueryRow(ctx, query, userID, universityID).Scan(
		&s.ID, &s.UserID, &s.UniversityID, &s.Category, &s.IsLocked, &s.Notes, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindLockedByUser returns the user's locked entry with its university, if any.
func (r *ShortlistRepository) FindLockedByUser(ctx context.Context, userID int) (*model.ShortlistEntry, error) {
	query := `
        SELECT s.id, s.university_id, u.name, u.country, s.category, s.is_locked
        FROM shortlist s
        JOIN universities u ON s.university_id = u.id
        WHERE s.user_id = $1 AND s.is_locked = TRUE
        LIMIT 1
    `
	var e model.ShortlistEntry
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&e.ID, &e.UniversityID, &e.UniversityName, &e.Country, &e.Category, &e.IsLocked,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SetLocked flips the is_locked flag on a shortlist item.
func (r *ShortlistRepository) SetLocked(ctx context.Context, id int, locked bool) error {
	query := `
        UPDATE shortlist
        SET is_locked = $2
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id, locked)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
