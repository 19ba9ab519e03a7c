package stage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"counsellor/internal/repository"
	"counsellor/pkg/logger"
	"counsellor/pkg/metrics"
)

// Locker serializes synchronization passes per owner. Two concurrent passes
// for the same user could both read "no existing task" and create duplicates;
// the lock closes that window.
type Locker interface {
	// Acquire blocks until the owner lock is held (or the attempt is given
	// up) and returns the release func.
	Acquire(ctx context.Context, userID int) func()
}

// Synchronizer reconciles a user's task set with their current admission
// stage inside a single transaction.
type Synchronizer struct {
	db     *pgxpool.Pool
	tasks  *repository.TaskRepository
	locker Locker
	logger *zap.Logger
}

func NewSynchronizer(db *pgxpool.Pool, tasks *repository.TaskRepository, locker Locker, logger *zap.Logger) *Synchronizer {
	return &Synchronizer{
		db:     db,
		tasks:  tasks,
		locker: locker,
		logger: logger,
	}
}

// Synchronize is idempotent: it ensures every task belonging to stages at or
// before currentStage exists and that past-stage tasks are Completed. All
// writes commit atomically; on failure nothing is applied and the caller may
// simply retry.
func (s *Synchronizer) Synchronize(ctx context.Context, userID int, currentStage string) error {
	if s.locker != nil {
		release := s.locker.Acquire(ctx, userID)
		defer release()
	}

	log := logger.WithTrace(ctx, s.logger)

	start := time.Now()
	created, completed, err := s.run(ctx, userID, currentStage)
	if err != nil {
		metrics.RecordStageSyncDuration("failed", time.Since(start))
		log.Error("Stage synchronization failed",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.String("stage", currentStage),
		)
		return fmt.Errorf("synchronize stage tasks: %w", err)
	}

	metrics.RecordStageSyncDuration("success", time.Since(start))
	if created > 0 || completed > 0 {
		log.Info("Stage tasks synchronized",
			zap.Int("user_id", userID),
			zap.String("stage", currentStage),
			zap.Int("created", created),
			zap.Int("completed", completed),
		)
	}
	return nil
}

func (s *Synchronizer) run(ctx context.Context, userID int, currentStage string) (created, completed int, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback(ctx)

	existing, err := s.tasks.ListByUserTx(ctx, tx, userID)
	if err != nil {
		return 0, 0, err
	}

	diff := Plan(userID, currentStage, existing)
	if diff.Empty() {
		return 0, 0, tx.Commit(ctx)
	}

	for i := range diff.Create {
		if err := s.tasks.InsertTx(ctx, tx, &diff.Create[i]); err != nil {
			return 0, 0, err
		}
		metrics.IncrementTaskGeneration("sync")
	}
	for _, id := range diff.Complete {
		if err := s.tasks.MarkCompletedTx(ctx, tx, id); err != nil {
			return 0, 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return len(diff.Create), len(diff.Complete), nil
}
