package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"counsellor/internal/model"
)

func TestSort_PendingBeforeCompleted(t *testing.T) {
	list := []model.Task{
		{ID: 1, Status: model.TaskStatusCompleted},
		{ID: 2, Status: model.TaskStatusPending},
		{ID: 3, Status: model.TaskStatusCompleted},
		{ID: 4, Status: model.TaskStatusPending},
	}

	Sort(list)

	require.Equal(t, []int{2, 4, 1, 3}, ids(list))
}

func TestSort_ByPositionWithinStatus(t *testing.T) {
	list := []model.Task{
		{ID: 1, Status: model.TaskStatusPending, Position: 3},
		{ID: 2, Status: model.TaskStatusPending, Position: 0},
		{ID: 3, Status: model.TaskStatusPending, Position: 1},
	}

	Sort(list)

	require.Equal(t, []int{2, 3, 1}, ids(list))
}

func TestSort_NewestFirstOnPositionTie(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	list := []model.Task{
		{ID: 1, Status: model.TaskStatusPending, CreatedAt: base},
		{ID: 2, Status: model.TaskStatusPending, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Status: model.TaskStatusPending, CreatedAt: base.Add(time.Minute)},
	}

	Sort(list)

	require.Equal(t, []int{2, 3, 1}, ids(list))
}

func TestSort_Stable(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	list := []model.Task{
		{ID: 1, Status: model.TaskStatusPending, CreatedAt: base},
		{ID: 2, Status: model.TaskStatusPending, CreatedAt: base},
		{ID: 3, Status: model.TaskStatusPending, CreatedAt: base},
	}

	Sort(list)

	require.Equal(t, []int{1, 2, 3}, ids(list))
}

func ids(list []model.Task) []int {
	out := make([]int, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}
