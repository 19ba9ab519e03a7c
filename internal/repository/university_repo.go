package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"counsellor/internal/model"
)

type UniversityRepository struct {
	db *pgxpool.Pool
}

func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{db: db}
}

// Insert creates a university row.
func (r *UniversityRepository) Insert(ctx context.Context, u *model.University) error {
	query := `
        INSERT INTO universities (name, country, location, tuition_fee, acceptance_rate, ranking)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	return r.db.QueryRow(ctx, query,
		u.Name, u.Country, u.Location, u.TuitionFee, u.AcceptanceRate, u.Ranking,
	).Scan(&u.ID, &u.CreatedAt)
}

// FindByID returns a university by id.
func (r *UniversityRepository) FindByID(ctx context.Context, id int) (*model.University, error) {
	query := `
        SELECT id, name, country, location, tuition_fee, acceptance_rate, ranking, created_at
        FROM universities
        WHERE id = $1
    `
	var u model.University
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Country, &u.Location, &u.TuitionFee,
		&u.AcceptanceRate, &u.Ranking, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByName returns a university by its exact name.
func (r *UniversityRepository) FindByName(ctx context.Context, name string) (*model.University, error) {
	query := `
        SELECT id, name, country, location, tuition_fee, acceptance_rate, ranking, created_at
        FROM universities
        WHERE name = $1
    `
	var u model.University
	err := r.db.QueryRow(ctx, query, name).Scan(
		&u.ID, &u.Name, &u.Country, &u.Location, &u.TuitionFee,
		&u.AcceptanceRate, &u.Ranking, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
