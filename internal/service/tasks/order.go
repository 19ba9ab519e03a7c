package tasks

import (
	"sort"

	"counsellor/internal/model"
)

// Sort orders tasks for display: all Pending before all Completed, then by
// manual position ascending, newest first on position ties.
func Sort(list []model.Task) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Status != b.Status {
			return a.Status == model.TaskStatusPending
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
