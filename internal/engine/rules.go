package engine

// signals bundles the per-offer booleans the rule table evaluates.
type signals struct {
	floorsOk     bool
	corridorOk   bool
	arWouldBreak bool
}

// rule is one row of the decision table. Accepted drives which counter the
// tracker records in live mode.
type rule struct {
	name     string
	matches  func(signals) bool
	action   Action
	reason   string
	accepted bool
}

// ruleTable is evaluated top to bottom; the first matching row wins. The
// order encodes the business precedence: acceptance-rate protection overrides
// any failing check, and a corridor failure is reported before a pay-floor
// failure when both fail.
var ruleTable = []rule{
	{
		name:     "protect_acceptance_rate",
		matches:  func(s signals) bool { return s.arWouldBreak && (!s.floorsOk || !s.corridorOk) },
		action:   ActionAcceptReroute,
		reason:   "protect acceptance rate",
		accepted: true,
	},
	{
		name:     "all_checks_passed",
		matches:  func(s signals) bool { return s.floorsOk && s.corridorOk },
		action:   ActionAccept,
		reason:   "all checks passed",
		accepted: true,
	},
	{
		name:    "off_corridor",
		matches: func(s signals) bool { return !s.corridorOk },
		action:  ActionDecline,
		reason:  "drop leaves the travel corridor",
	},
	{
		name:    "below_pay_floor",
		matches: func(s signals) bool { return true },
		action:  ActionDecline,
		reason:  "pay below floor",
	},
}

func matchRule(s signals) rule {
	for _, r := range ruleTable {
		if r.matches(s) {
			return r
		}
	}
	// Unreachable: the last row always matches.
	return ruleTable[len(ruleTable)-1]
}
