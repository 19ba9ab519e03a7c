package stage

import "strings"

// Stage is one phase of the admission journey together with the checklist
// tasks that should exist once a student reaches it.
type Stage struct {
	Name  string
	Tasks []string
}

// Stages is the fixed, ordered admission pipeline. Order matters: a stage's
// index is its ordinal, and every stage before the student's current one is
// considered finished.
var Stages = []Stage{
	{
		Name:  "Building Profile",
		Tasks: []string{"Complete Initial Profile"},
	},
	{
		Name: "Stage 2: Discovering Universities",
		Tasks: []string{
			"Research University Programs",
			"Broaden University Search",
		},
	},
	{
		Name: "Stage 3: Finalizing Universities",
		Tasks: []string{
			"Shortlist Universities",
			"Prepare for GMAT/GRE",
		},
	},
	{
		Name: "Stage 4: Preparing Applications",
		Tasks: []string{
			"Lock Final Selection",
			"Draft Statement of Purpose (SOP)",
			"Request Letters of Recommendation (LOR)",
		},
	},
}

// Stage names referenced by the advancement triggers.
const (
	StageBuildingProfile = "Building Profile"
	StageDiscovering     = "Stage 2: Discovering Universities"
	StageFinalizing      = "Stage 3: Finalizing Universities"
	StageApplications    = "Stage 4: Preparing Applications"
)

// OrdinalOf resolves a stage name to its position in the pipeline. Unknown
// names resolve to the first stage; a stale or mistyped stored value must not
// break synchronization.
func OrdinalOf(name string) int {
	for i, s := range Stages {
		if s.Name == name {
			return i
		}
	}
	return 0
}

// keyPhrase normalizes a canonical task title to the short phrase used for
// fuzzy duplicate detection. The table is deliberately tiny and literal so
// matching stays predictable: "Draft SOP" does NOT match
// "Draft Statement of Purpose (SOP)" because only the full phrase is keyed.
func keyPhrase(title string) string {
	phrase := strings.ToLower(title)
	switch {
	case strings.Contains(phrase, "statement of purpose"):
		return "statement of purpose"
	case strings.Contains(phrase, "lor"):
		return "recommendation"
	case strings.Contains(phrase, "gmat"):
		return "gmat"
	case strings.Contains(phrase, "gre"):
		return "gre"
	case strings.Contains(phrase, "shortlist"):
		return "shortlist"
	default:
		return phrase
	}
}
