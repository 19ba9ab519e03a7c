package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"counsellor/internal/model"
)

// memStore mirrors the repository's owner-scoped write semantics: position
// updates on missing or foreign tasks affect nothing, status updates and
// lookups fail with ErrNotFound.
type memStore struct {
	tasks map[int]*model.Task
}

func newMemStore(tasks ...model.Task) *memStore {
	s := &memStore{tasks: map[int]*model.Task{}}
	for i := range tasks {
		t := tasks[i]
		s.tasks[t.ID] = &t
	}
	return s
}

func (s *memStore) ListByUser(_ context.Context, userID int) ([]model.Task, error) {
	list := []model.Task{}
	for _, t := range s.tasks {
		if t.UserID == userID {
			list = append(list, *t)
		}
	}
	return list, nil
}

func (s *memStore) Insert(_ context.Context, t *model.Task) error {
	t.ID = len(s.tasks) + 1
	copied := *t
	s.tasks[t.ID] = &copied
	return nil
}

func (s *memStore) FindByIDForUser(_ context.Context, taskID, userID int) (*model.Task, error) {
	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *memStore) UpdateStatus(_ context.Context, taskID, userID int, status string) error {
	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	t.Status = status
	return nil
}

func (s *memStore) UpdatePosition(_ context.Context, taskID, userID, position int) error {
	t, ok := s.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil
	}
	t.Position = position
	return nil
}

func TestReorder_AssignsPositionByIndex(t *testing.T) {
	store := newMemStore(
		model.Task{ID: 3, UserID: 1, Position: 0},
		model.Task{ID: 7, UserID: 1, Position: 1},
		model.Task{ID: 9, UserID: 1, Position: 2},
	)
	svc := NewService(store, nil, nil, zap.NewNop())

	err := svc.Reorder(context.Background(), 1, []int{9, 7, 3})

	require.NoError(t, err)
	assert.Equal(t, 0, store.tasks[9].Position)
	assert.Equal(t, 1, store.tasks[7].Position)
	assert.Equal(t, 2, store.tasks[3].Position)
}

func TestReorder_SkipsForeignIDs(t *testing.T) {
	store := newMemStore(
		model.Task{ID: 3, UserID: 1},
		model.Task{ID: 5, UserID: 2, Position: 41},
		model.Task{ID: 9, UserID: 1},
	)
	svc := NewService(store, nil, nil, zap.NewNop())

	err := svc.Reorder(context.Background(), 1, []int{9, 5, 3})

	require.NoError(t, err)
	assert.Equal(t, 0, store.tasks[9].Position)
	assert.Equal(t, 2, store.tasks[3].Position)
	// The other user's task keeps its position.
	assert.Equal(t, 41, store.tasks[5].Position)
}

func TestToggle_FlipsStatusBothWays(t *testing.T) {
	store := newMemStore(
		model.Task{ID: 4, UserID: 1, Status: model.TaskStatusPending},
	)
	svc := NewService(store, nil, nil, zap.NewNop())

	updated, err := svc.Toggle(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, updated.Status)
	assert.Equal(t, model.TaskStatusCompleted, store.tasks[4].Status)

	updated, err = svc.Toggle(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, updated.Status)
}

func TestToggle_ForeignTaskNotFound(t *testing.T) {
	store := newMemStore(
		model.Task{ID: 4, UserID: 2, Status: model.TaskStatusPending},
	)
	svc := NewService(store, nil, nil, zap.NewNop())

	_, err := svc.Toggle(context.Background(), 1, 4)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, model.TaskStatusPending, store.tasks[4].Status)
}
