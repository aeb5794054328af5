// Package grading holds the pure scoring logic for rank tests: resolving
// which curriculum applies to a participant, the per-item score state
// machine, and aggregation of item scores into a final result.
package grading

// ItemState is the score of a single curriculum item. The zero value is
// StateIncomplete, so items absent from a score map are incomplete.
type ItemState int

const (
	StateIncomplete ItemState = iota
	StatePassed
	StateFailed
)

// Next returns the state after one grader tap on the item:
// incomplete -> passed -> failed -> incomplete.
func (s ItemState) Next() ItemState {
	switch s {
	case StateIncomplete:
		return StatePassed
	case StatePassed:
		return StateFailed
	default:
		return StateIncomplete
	}
}

func (s ItemState) String() string {
	switch s {
	case StatePassed:
		return "passed"
	case StateFailed:
		return "failed"
	default:
		return "incomplete"
	}
}

// Override is the grader's explicit final decision for a participant.
// Item-level completion never produces a pass on its own; a human has to
// confirm the result, so the zero value OverrideNone maps to incomplete.
type Override int

const (
	OverrideNone Override = iota
	OverridePassed
	OverrideFailed
)

// ParseOverride maps the wire statuses "passed" and "failed" to an
// Override; anything else is OverrideNone.
func ParseOverride(s string) Override {
	switch s {
	case "passed":
		return OverridePassed
	case "failed":
		return OverrideFailed
	default:
		return OverrideNone
	}
}
