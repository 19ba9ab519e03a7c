package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinalOf_KnownStages(t *testing.T) {
	assert.Equal(t, 0, OrdinalOf("Building Profile"))
	assert.Equal(t, 1, OrdinalOf("Stage 2: Discovering Universities"))
	assert.Equal(t, 2, OrdinalOf("Stage 3: Finalizing Universities"))
	assert.Equal(t, 3, OrdinalOf("Stage 4: Preparing Applications"))
}

func TestOrdinalOf_UnknownFallsBackToFirst(t *testing.T) {
	assert.Equal(t, 0, OrdinalOf(""))
	assert.Equal(t, 0, OrdinalOf("Some Garbage Value"))
	assert.Equal(t, 0, OrdinalOf("building profile")) // names are case-sensitive
}

func TestKeyPhrase(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Draft Statement of Purpose (SOP)", "statement of purpose"},
		{"Request Letters of Recommendation (LOR)", "recommendation"},
		{"Prepare for GMAT/GRE", "gmat"},
		{"Take the GRE", "gre"},
		{"Shortlist Universities", "shortlist"},
		{"Complete Initial Profile", "complete initial profile"},
		{"Research University Programs", "research university programs"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyPhrase(tt.title), "title %q", tt.title)
	}
}

func TestStages_CanonicalTaskTable(t *testing.T) {
	assert.Len(t, Stages, 4)
	assert.Equal(t, []string{"Complete Initial Profile"}, Stages[0].Tasks)
	assert.Equal(t, []string{"Research University Programs", "Broaden University Search"}, Stages[1].Tasks)
	assert.Equal(t, []string{"Shortlist Universities", "Prepare for GMAT/GRE"}, Stages[2].Tasks)
	assert.Equal(t, []string{
		"Lock Final Selection",
		"Draft Statement of Purpose (SOP)",
		"Request Letters of Recommendation (LOR)",
	}, Stages[3].Tasks)
}
