package tasks

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"counsellor/internal/model"
	"counsellor/internal/repository"
	"counsellor/internal/stage"
	"counsellor/pkg/metrics"
)

var ErrNotFound = repository.ErrNotFound

// TaskStore is the task persistence surface the service uses.
type TaskStore interface {
	ListByUser(ctx context.Context, userID int) ([]model.Task, error)
	Insert(ctx context.Context, t *model.Task) error
	FindByIDForUser(ctx context.Context, taskID, userID int) (*model.Task, error)
	UpdateStatus(ctx context.Context, taskID, userID int, status string) error
	UpdatePosition(ctx context.Context, taskID, userID, position int) error
}

// ProfileStore resolves the profile that carries the user's current stage.
type ProfileStore interface {
	FindByUserID(ctx context.Context, userID int) (*model.Profile, error)
}

// Service exposes the user-facing task operations. Reads run through the
// stage synchronizer first so the list always reflects the current stage.
type Service struct {
	taskRepo    TaskStore
	profileRepo ProfileStore
	syncer      *stage.Synchronizer
	logger      *zap.Logger
}

func NewService(taskRepo TaskStore, profileRepo ProfileStore, syncer *stage.Synchronizer, logger *zap.Logger) *Service {
	return &Service{
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
		syncer:      syncer,
		logger:      logger,
	}
}

// List synchronizes the user's tasks with their current stage, then returns
// them Pending-first.
func (s *Service) List(ctx context.Context, userID int) ([]model.Task, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if profile != nil {
		if err := s.syncer.Synchronize(ctx, userID, profile.CurrentStage); err != nil {
			return nil, err
		}
	}

	list, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	Sort(list)
	return list, nil
}

// Create adds a manually authored task at the end of the pending list.
func (s *Service) Create(ctx context.Context, userID int, title, description string) (*model.Task, error) {
	t := &model.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      model.TaskStatusPending,
	}
	if err := s.taskRepo.Insert(ctx, t); err != nil {
		return nil, err
	}
	metrics.IncrementTaskGeneration("user")
	return t, nil
}

// Reorder assigns position = index for each task id, in the order given.
// Ids the user does not own (or that do not exist) are silently skipped.
func (s *Service) Reorder(ctx context.Context, userID int, taskIDs []int) error {
	for index, taskID := range taskIDs {
		if err := s.taskRepo.UpdatePosition(ctx, taskID, userID, index); err != nil {
			return err
		}
	}
	return nil
}

// Toggle flips a task between Pending and Completed and returns the updated
// task. Foreign or missing tasks fail with ErrNotFound.
func (s *Service) Toggle(ctx context.Context, userID, taskID int) (*model.Task, error) {
	t, err := s.taskRepo.FindByIDForUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if t.Status == model.TaskStatusCompleted {
		t.Status = model.TaskStatusPending
	} else {
		t.Status = model.TaskStatusCompleted
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, userID, t.Status); err != nil {
		return nil, err
	}

	s.logger.Info("Task toggled",
		zap.Int("task_id", taskID),
		zap.Int("user_id", userID),
		zap.String("status", t.Status),
	)
	return t, nil
}
