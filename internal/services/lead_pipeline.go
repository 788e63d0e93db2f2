package services

// The five pipeline stages, in funnel order. Order matters for the kanban
// columns and the table tabs, but transitions are NOT restricted to it:
// sales pipelines are not monotonic (a "lost" lead can be re-engaged), so
// any stage is reachable from any other.
var LeadStatusOrder = []string{"new", "contacted", "interested", "converted", "lost"}

var LeadStatusLabels = map[string]string{
	"new":        "New",
	"contacted":  "Contacted",
	"interested": "Interested",
	"converted":  "Converted",
	"lost":       "Lost",
}

// Per-stage remark suggestions offered by the UI. A stage missing from this
// map simply offers no suggestions (free text only).
var leadRemarkSuggestions = map[string][]string{
	"new":        {"Need to contact", "Verify phone", "Check city availability"},
	"contacted":  {"Follow up", "Waiting for response", "Send quote"},
	"interested": {"Negotiate", "Confirm time", "Ask for address"},
	"converted":  {"Mark as paid", "Assign to garage", "Schedule appointment"},
	"lost":       {"Not interested", "Switched provider", "Invalid lead"},
}

func IsLeadStatus(s string) bool {
	_, ok := LeadStatusLabels[s]
	return ok
}

// RemarksFor returns the ordered remark suggestions for a pipeline stage.
// Unknown stages yield an empty slice, never nil panics; callers must treat
// an empty result as "free text only, no default".
func RemarksFor(status string) []string {
	src := leadRemarkSuggestions[status]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// firstRemarkFor is the default the table editor pre-selects when a lead has
// no remark of its own yet.
func firstRemarkFor(status string) string {
	if s := leadRemarkSuggestions[status]; len(s) > 0 {
		return s[0]
	}
	return ""
}
