package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOnShortlist(t *testing.T) {
	next, advanced := NextOnShortlist(StageBuildingProfile)
	assert.True(t, advanced)
	assert.Equal(t, StageFinalizing, next)

	next, advanced = NextOnShortlist(StageDiscovering)
	assert.True(t, advanced)
	assert.Equal(t, StageFinalizing, next)

	next, advanced = NextOnShortlist(StageFinalizing)
	assert.False(t, advanced)
	assert.Equal(t, StageFinalizing, next)

	next, advanced = NextOnShortlist(StageApplications)
	assert.False(t, advanced)
	assert.Equal(t, StageApplications, next)
}

func TestNextOnLock(t *testing.T) {
	for _, current := range []string{StageBuildingProfile, StageDiscovering, StageFinalizing} {
		next, advanced := NextOnLock(current)
		assert.True(t, advanced, "from %q", current)
		assert.Equal(t, StageApplications, next)
	}

	next, advanced := NextOnLock(StageApplications)
	assert.False(t, advanced)
	assert.Equal(t, StageApplications, next)
}
