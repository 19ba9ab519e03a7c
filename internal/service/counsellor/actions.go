package counsellor

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Action types the counsellor may embed in a reply.
const (
	ActionShortlist = "shortlist"
	ActionAddTask   = "add_task"
	ActionLock      = "lock"
)

// Action is a side effect requested by the counsellor via an
// [ACTION: {...}] tag in its reply.
type Action struct {
	Type       string `json:"type"`
	University string `json:"university,omitempty"`
	Category   string `json:"category,omitempty"`
	Title      string `json:"title,omitempty"`
}

var actionTagRe = regexp.MustCompile(`(?s)\[ACTION:\s*(\{.*?\})\]`)

// ParseActions extracts all well-formed action tags from a reply. Tags whose
// JSON does not parse are dropped.
func ParseActions(text string) []Action {
	var actions []Action
	for _, match := range actionTagRe.FindAllStringSubmatch(text, -1) {
		var a Action
		if err := json.Unmarshal([]byte(match[1]), &a); err != nil {
			continue
		}
		actions = append(actions, a)
	}
	return actions
}

// StripActions removes action tags from a reply before showing it to the
// student.
func StripActions(text string) string {
	return strings.TrimSpace(actionTagRe.ReplaceAllString(text, ""))
}
