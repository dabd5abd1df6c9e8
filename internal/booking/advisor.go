package booking

import (
	"strconv"
	"strings"
)

// DefaultGroupThreshold is the party size at which the widget suggests the
// group-menu flow instead of the regular form.
const DefaultGroupThreshold = 10

// GroupRedirectTarget is where the surrounding page navigates when the
// guest accepts the advisory: the menu section pre-filtered to the group
// view.  Accepting carries no other payload and never mutates the draft.
const GroupRedirectTarget = "/menu?view=group"

// GroupSizeAdvisor decides when to raise the non-blocking "large party"
// suggestion.  The advisory fires once per crossing from below the
// threshold to at or above it; while the value stays large, further
// keystrokes stay quiet until it drops below again.
type GroupSizeAdvisor struct {
	threshold int
	above     bool
}

// NewGroupSizeAdvisor returns an advisor for the given threshold; values
// below 1 fall back to DefaultGroupThreshold.
func NewGroupSizeAdvisor(threshold int) *GroupSizeAdvisor {
	if threshold < 1 {
		threshold = DefaultGroupThreshold
	}
	return &GroupSizeAdvisor{threshold: threshold}
}

// Evaluate is called on every change of the party-size field and reports
// whether the advisory should be raised now.  Unparseable input counts as
// below the threshold.
func (a *GroupSizeAdvisor) Evaluate(partySize string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(partySize))
	if err != nil || n < a.threshold {
		a.above = false
		return false
	}
	if a.above {
		return false
	}
	a.above = true
	return true
}

// IsLargeParty is the stateless form of the rule, used where no per-widget
// advisor instance exists (the advisory HTTP endpoint).
func IsLargeParty(partySize string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(partySize))
	return err == nil && n >= DefaultGroupThreshold
}
