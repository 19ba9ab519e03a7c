package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"counsellor/internal/model"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

const taskColumns = `id, user_id, title, description, status, is_auto_generated, position, created_at`

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.IsAutoGenerated,
		&t.Position,
		&t.CreatedAt,
	)
	return t, err
}

// ListByUser returns all of the user's tasks in insertion order.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int) ([]model.Task, error) {
	return r.listByUser(ctx, r.db, userID)
}

// ListByUserTx is ListByUser inside a transaction, used by the stage
// synchronizer so that the snapshot and the writes share one tx.
func (r *TaskRepository) ListByUserTx(ctx context.Context, tx pgx.Tx, userID int) ([]model.Task, error) {
	return r.listByUser(ctx, tx, userID)
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *TaskRepository) listByUser(ctx context.Context, q queryer, userID int) ([]model.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        WHERE user_id = $1
        ORDER BY id ASC
    `
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query tasks",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.logger.Error("Failed to scan task row",
				zap.Error(err),
				zap.Int("user_id", userID),
			)
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Insert creates a task outside of any synchronization pass.
func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) error {
	query := `
        INSERT INTO tasks (user_id, title, description, status, is_auto_generated, position)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		t.UserID, t.Title, t.Description, t.Status, t.IsAutoGenerated, t.Position,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Error(err),
			zap.Int("user_id", t.UserID),
			zap.String("title", t.Title),
		)
		return err
	}
	r.logger.Info("Task inserted",
		zap.Int("task_id", t.ID),
		zap.Int("user_id", t.UserID),
	)
	return nil
}

// InsertTx creates a task within a synchronization transaction.
func (r *TaskRepository) InsertTx(ctx context.Context, tx pgx.Tx, t *model.Task) error {
	query := `
        INSERT INTO tasks (user_id, title, description, status, is_auto_generated, position)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	return tx.QueryRow(ctx, query,
		t.UserID, t.Title, t.Description, t.Status, t.IsAutoGenerated, t.Position,
	).Scan(&t.ID, &t.CreatedAt)
}

// MarkCompletedTx sets a task's status to Completed within a transaction.
func (r *TaskRepository) MarkCompletedTx(ctx context.Context, tx pgx.Tx, taskID int) error {
	query := `
        UPDATE tasks
        SET status = 'Completed'
        WHERE id = $1
    `
	_, err := tx.Exec(ctx, query, taskID)
	return err
}

// FindByIDForUser returns the task only if it belongs to the given user.
func (r *TaskRepository) FindByIDForUser(ctx context.Context, taskID, userID int) (*model.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        WHERE id = $1 AND user_id = $2
    `
	t, err := scanTask(r.db.QueryRow(ctx, query, taskID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateStatus writes a task's status, scoped to its owner.
func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID, userID int, status string) error {
	query := `
        UPDATE tasks
        SET status = $3
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, taskID, userID, status)
	if err != nil {
		r.logger.Error("Failed to update task status",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePosition writes a task's manual ordering position, scoped to its owner.
// Missing or foreign tasks affect zero rows; the caller treats that as a skip.
func (r *TaskRepository) UpdatePosition(ctx context.Context, taskID, userID, position int) error {
	query := `
        UPDATE tasks
        SET position = $3
        WHERE id = $1 AND user_id = $2
    `
	_, err := r.db.Exec(ctx, query, taskID, userID, position)
	return err
}
