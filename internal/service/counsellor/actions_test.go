package counsellor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActions_Shortlist(t *testing.T) {
	reply := `Great choice! [ACTION: {"type": "shortlist", "university": "MIT", "category": "Dream"}]`

	actions := ParseActions(reply)

	require.Len(t, actions, 1)
	assert.Equal(t, ActionShortlist, actions[0].Type)
	assert.Equal(t, "MIT", actions[0].University)
	assert.Equal(t, "Dream", actions[0].Category)
}

func TestParseActions_Multiple(t *testing.T) {
	reply := `Let's do both.
[ACTION: {"type": "add_task", "title": "Email admissions office"}]
[ACTION: {"type": "lock", "university": "Stanford University"}]`

	actions := ParseActions(reply)

	require.Len(t, actions, 2)
	assert.Equal(t, ActionAddTask, actions[0].Type)
	assert.Equal(t, "Email admissions office", actions[0].Title)
	assert.Equal(t, ActionLock, actions[1].Type)
	assert.Equal(t, "Stanford University", actions[1].University)
}

func TestParseActions_MalformedJSONDropped(t *testing.T) {
	reply := `Sure. [ACTION: {"type": "shortlist", "university": }] and also
[ACTION: {"type": "add_task", "title": "Book IELTS slot"}]`

	actions := ParseActions(reply)

	require.Len(t, actions, 1)
	assert.Equal(t, ActionAddTask, actions[0].Type)
}

func TestParseActions_NoTags(t *testing.T) {
	assert.Empty(t, ParseActions("Just a plain answer with no side effects."))
}

func TestStripActions(t *testing.T) {
	reply := `I've shortlisted it for you. [ACTION: {"type": "shortlist", "university": "MIT"}]`

	assert.Equal(t, "I've shortlisted it for you.", StripActions(reply))
}

func TestStripActions_MultilinePayload(t *testing.T) {
	reply := "Done.\n[ACTION: {\"type\": \"add_task\",\n\"title\": \"Draft essays\"}]"

	assert.Equal(t, "Done.", StripActions(reply))
}
