package counsellor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"counsellor/internal/model"
)

type fakeUniversities struct {
	locked      map[string]bool
	shortlisted []string
}

func (f *fakeUniversities) ListShortlist(context.Context, int) ([]model.ShortlistEntry, error) {
	return nil, nil
}

func (f *fakeUniversities) AddToShortlist(_ context.Context, _ int, name, _, _ string) (*model.ShortlistItem, error) {
	f.shortlisted = append(f.shortlisted, name)
	return &model.ShortlistItem{UniversityID: 1}, nil
}

func (f *fakeUniversities) LockByUniversityName(_ context.Context, _ int, name string) (bool, error) {
	if f.locked[name] {
		return false, nil
	}
	if f.locked == nil {
		f.locked = map[string]bool{}
	}
	f.locked[name] = true
	return true, nil
}

func TestExecuteActions_LockReportsOnce(t *testing.T) {
	uni := &fakeUniversities{}
	svc := NewService(nil, nil, nil, uni, nil, zap.NewNop())

	actions := []Action{{Type: ActionLock, University: "Stanford University"}}

	executed := svc.executeActions(context.Background(), 1, nil, nil, actions)
	require.Equal(t, []string{"Locked Stanford University - Welcome to the Application phase!"}, executed)

	// Re-locking the same choice changes nothing and stays silent.
	executed = svc.executeActions(context.Background(), 1, nil, nil, actions)
	assert.Empty(t, executed)
}

func TestExecuteActions_AlreadyLockedIsSilent(t *testing.T) {
	uni := &fakeUniversities{locked: map[string]bool{"MIT": true}}
	svc := NewService(nil, nil, nil, uni, nil, zap.NewNop())

	executed := svc.executeActions(context.Background(), 1, nil, nil, []Action{
		{Type: ActionLock, University: "MIT"},
	})

	assert.Empty(t, executed)
}

func TestExecuteActions_ShortlistDefaultsToTarget(t *testing.T) {
	uni := &fakeUniversities{}
	svc := NewService(nil, nil, nil, uni, nil, zap.NewNop())

	executed := svc.executeActions(context.Background(), 1, nil, nil, []Action{
		{Type: ActionShortlist, University: "ETH Zurich"},
	})

	require.Equal(t, []string{"Shortlisted ETH Zurich to Target list"}, executed)
	assert.Equal(t, []string{"ETH Zurich"}, uni.shortlisted)
}

func TestExecuteActions_IgnoresBlankTargets(t *testing.T) {
	uni := &fakeUniversities{}
	svc := NewService(nil, nil, nil, uni, nil, zap.NewNop())

	executed := svc.executeActions(context.Background(), 1, nil, nil, []Action{
		{Type: ActionLock},
		{Type: ActionShortlist},
		{Type: ActionAddTask},
	})

	assert.Empty(t, executed)
	assert.Empty(t, uni.shortlisted)
}
