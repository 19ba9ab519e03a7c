package stage

import (
	"strings"

	"counsellor/internal/model"
)

// Diff is the set of writes one synchronization pass has to apply.
type Diff struct {
	// Create holds new auto-generated tasks, in stage order.
	Create []model.Task
	// Complete holds ids of existing tasks that belong to a past stage and
	// must be forced to Completed.
	Complete []int
}

// Empty reports whether the pass has nothing to write.
func (d Diff) Empty() bool {
	return len(d.Create) == 0 && len(d.Complete) == 0
}

// Plan reconciles a snapshot of the user's tasks against their current stage
// and returns the diff to apply. It is a pure function: the snapshot is
// copied, and created tasks are appended to the local copy so later
// iterations of the same pass see them and do not duplicate.
//
// Only stages at or before the current one are walked: tasks for future
// stages appear when the student actually reaches them.
//
// For each canonical title, in stage order:
//   - an exact (case-sensitive) title match wins;
//   - otherwise the first task whose lowercased title contains the canonical
//     title's key phrase matches;
//   - no match creates the task, Completed when its stage is already behind
//     the current one, Pending otherwise;
//   - a match on a past stage is forced to Completed. Matches at or after the
//     current stage are left alone: their status is real user progress.
func Plan(userID int, currentStage string, existing []model.Task) Diff {
	currentIdx := OrdinalOf(currentStage)

	snapshot := make([]model.Task, len(existing))
	copy(snapshot, existing)

	var diff Diff
	for idx, st := range Stages {
		if idx > currentIdx {
			break
		}
		for _, title := range st.Tasks {
			matched := -1
			for i := range snapshot {
				if snapshot[i].Title == title {
					matched = i
					break
				}
			}
			if matched < 0 {
				phrase := keyPhrase(title)
				for i := range snapshot {
					if strings.Contains(strings.ToLower(snapshot[i].Title), phrase) {
						matched = i
						break
					}
				}
			}

			if matched < 0 {
				status := model.TaskStatusPending
				if idx < currentIdx {
					status = model.TaskStatusCompleted
				}
				t := model.Task{
					UserID:          userID,
					Title:           title,
					Status:          status,
					IsAutoGenerated: true,
				}
				diff.Create = append(diff.Create, t)
				snapshot = append(snapshot, t)
				continue
			}

			if idx < currentIdx && snapshot[matched].Status != model.TaskStatusCompleted {
				snapshot[matched].Status = model.TaskStatusCompleted
				if snapshot[matched].ID != 0 {
					diff.Complete = append(diff.Complete, snapshot[matched].ID)
				}
			}
		}
	}
	return diff
}
