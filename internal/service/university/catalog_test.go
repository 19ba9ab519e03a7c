package university

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCatalog_EmptyQueryReturnsDefaults(t *testing.T) {
	results := searchCatalog("")

	require.Len(t, results, 6)
	assert.Equal(t, "Stanford University", results[0].Name)
}

func TestSearchCatalog_FiltersByName(t *testing.T) {
	results := searchCatalog("toronto")

	require.Len(t, results, 1)
	assert.Equal(t, "University of Toronto", results[0].Name)
}

func TestSearchCatalog_FiltersByCity(t *testing.T) {
	results := searchCatalog("london")

	require.Len(t, results, 2)
	names := []string{}
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{
		"Imperial College London",
		"University College London (UCL)",
	}, names)
}

func TestSearchCatalog_CaseInsensitive(t *testing.T) {
	assert.Equal(t, searchCatalog("CAMBRIDGE"), searchCatalog("cambridge"))
}

func TestSearchCatalog_ZeroHitsFallBackToDiverseSample(t *testing.T) {
	results := searchCatalog("hogwarts")

	require.Len(t, results, 4)
	countries := map[string]bool{}
	for _, r := range results {
		countries[r.Country] = true
	}
	assert.GreaterOrEqual(t, len(countries), 3, "fallback sample spans multiple countries")
}
