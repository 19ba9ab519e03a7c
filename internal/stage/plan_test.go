package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counsellor/internal/model"
)

// apply folds a diff back into a task list the way the synchronizer's
// transaction would, so successive Plan calls can be chained in tests.
func apply(existing []model.Task, diff Diff) []model.Task {
	nextID := 1
	for _, t := range existing {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	out := make([]model.Task, len(existing))
	copy(out, existing)
	for i := range out {
		for _, id := range diff.Complete {
			if out[i].ID == id {
				out[i].Status = model.TaskStatusCompleted
			}
		}
	}
	for _, t := range diff.Create {
		t.ID = nextID
		nextID++
		out = append(out, t)
	}
	return out
}

func TestPlan_NewUserGetsFirstStageTaskOnly(t *testing.T) {
	diff := Plan(1, StageBuildingProfile, nil)

	require.Len(t, diff.Create, 1)
	assert.Equal(t, "Complete Initial Profile", diff.Create[0].Title)
	assert.Equal(t, model.TaskStatusPending, diff.Create[0].Status)
	assert.True(t, diff.Create[0].IsAutoGenerated)
	assert.Empty(t, diff.Complete)
}

func TestPlan_UnknownStageBehavesLikeFirstStage(t *testing.T) {
	known := Plan(1, StageBuildingProfile, nil)
	unknown := Plan(1, "Stage 99: Nonsense", nil)

	assert.Equal(t, known, unknown)
}

func TestPlan_ThirdStageCreatesAllFiveTasks(t *testing.T) {
	diff := Plan(7, StageFinalizing, nil)

	require.Len(t, diff.Create, 5)
	byTitle := map[string]model.Task{}
	for _, c := range diff.Create {
		byTitle[c.Title] = c
	}

	// Past-stage tasks arrive already completed, current-stage tasks pending.
	assert.Equal(t, model.TaskStatusCompleted, byTitle["Complete Initial Profile"].Status)
	assert.Equal(t, model.TaskStatusCompleted, byTitle["Research University Programs"].Status)
	assert.Equal(t, model.TaskStatusCompleted, byTitle["Broaden University Search"].Status)
	assert.Equal(t, model.TaskStatusPending, byTitle["Shortlist Universities"].Status)
	assert.Equal(t, model.TaskStatusPending, byTitle["Prepare for GMAT/GRE"].Status)

	for title, c := range byTitle {
		assert.Equal(t, 7, c.UserID, "task %q", title)
		assert.True(t, c.IsAutoGenerated, "task %q", title)
	}
	assert.Empty(t, diff.Complete)
}

func TestPlan_Idempotent(t *testing.T) {
	tasks := apply(nil, Plan(1, StageApplications, nil))

	again := Plan(1, StageApplications, tasks)
	assert.True(t, again.Empty(), "second pass over a synchronized list must be a no-op")
}

func TestPlan_CompletesExistingPastStageTasks(t *testing.T) {
	existing := []model.Task{
		{ID: 10, UserID: 1, Title: "Complete Initial Profile", Status: model.TaskStatusPending},
		{ID: 11, UserID: 1, Title: "Research University Programs", Status: model.TaskStatusPending},
	}

	diff := Plan(1, StageFinalizing, existing)

	assert.ElementsMatch(t, []int{10, 11}, diff.Complete)
	titles := []string{}
	for _, c := range diff.Create {
		titles = append(titles, c.Title)
	}
	assert.ElementsMatch(t, []string{
		"Broaden University Search",
		"Shortlist Universities",
		"Prepare for GMAT/GRE",
	}, titles)
}

func TestPlan_NeverReopensCompletedTasks(t *testing.T) {
	existing := []model.Task{
		{ID: 5, UserID: 1, Title: "Shortlist Universities", Status: model.TaskStatusCompleted},
	}

	diff := Plan(1, StageFinalizing, existing)

	assert.Empty(t, diff.Complete)
	for _, c := range diff.Create {
		assert.NotEqual(t, "Shortlist Universities", c.Title)
	}
}

func TestPlan_FuzzyMatchByKeyPhrase(t *testing.T) {
	existing := []model.Task{
		{ID: 3, UserID: 1, Title: "Write my statement of purpose draft", Status: model.TaskStatusPending},
		{ID: 4, UserID: 1, Title: "Chase recommendation letters from professors", Status: model.TaskStatusPending},
	}

	diff := Plan(1, StageApplications, existing)

	for _, c := range diff.Create {
		assert.NotEqual(t, "Draft Statement of Purpose (SOP)", c.Title)
		assert.NotEqual(t, "Request Letters of Recommendation (LOR)", c.Title)
	}
}

func TestPlan_DraftSOPDoesNotMatchCanonicalTitle(t *testing.T) {
	// "Draft SOP" lacks the full "statement of purpose" phrase, so the
	// canonical task is still created alongside it.
	existing := []model.Task{
		{ID: 9, UserID: 1, Title: "Draft SOP", Status: model.TaskStatusPending},
	}

	diff := Plan(1, StageApplications, existing)

	created := false
	for _, c := range diff.Create {
		if c.Title == "Draft Statement of Purpose (SOP)" {
			created = true
		}
	}
	assert.True(t, created)
}

func TestPlan_DoesNotDuplicateWithinOnePass(t *testing.T) {
	// Tasks created earlier in the same pass are visible to later matching,
	// so running against an empty list never yields duplicate titles.
	diff := Plan(1, StageApplications, nil)

	seen := map[string]bool{}
	for _, c := range diff.Create {
		assert.False(t, seen[c.Title], "duplicate %q in one pass", c.Title)
		seen[c.Title] = true
	}
	require.Len(t, diff.Create, 8)
}

func TestPlan_ProgressionEndToEnd(t *testing.T) {
	// New user: one pending task.
	tasks := apply(nil, Plan(1, StageBuildingProfile, nil))
	require.Len(t, tasks, 1)

	// Advance straight to stage 3: earlier tasks complete, five total.
	diff := Plan(1, StageFinalizing, tasks)
	assert.ElementsMatch(t, []int{tasks[0].ID}, diff.Complete)
	assert.Len(t, diff.Create, 4)
	tasks = apply(tasks, diff)
	require.Len(t, tasks, 5)

	// Re-running at the same stage changes nothing.
	assert.True(t, Plan(1, StageFinalizing, tasks).Empty())
}
