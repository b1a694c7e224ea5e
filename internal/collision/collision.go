package collision

import (
	"shotlog/internal/annotation"
	"shotlog/internal/timecode"
)

// Choice is the user's decision when a save collides with an existing record.
type Choice int

const (
	// ChoiceCancel abandons the save; the store stays exactly as loaded.
	ChoiceCancel Choice = iota
	// ChoiceProceed keeps the incoming record's original timestamp and
	// replaces the existing record.
	ChoiceProceed
	// ChoiceRefresh re-queries the playback position at resolution time and
	// moves the incoming record to it.
	ChoiceRefresh
)

// String renders the choice for logs and prompts.
func (c Choice) String() string {
	switch c {
	case ChoiceProceed:
		return "proceed"
	case ChoiceRefresh:
		return "refresh"
	case ChoiceCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Resolve computes the record to persist for a collision between existing and
// incoming. The now function is consulted only for ChoiceRefresh, at the
// moment of resolution rather than when the candidate was first built. The
// boolean result is false when nothing should be persisted.
func Resolve(incoming annotation.Record, choice Choice, now func() timecode.TimeCode) (annotation.Record, bool) {
	switch choice {
	case ChoiceProceed:
		return incoming, true
	case ChoiceRefresh:
		return incoming.WithTimestamp(now()), true
	default:
		return annotation.Record{}, false
	}
}
