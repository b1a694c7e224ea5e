package save

import "shotlog/internal/annotation"

// State represents where a save session is in its lifecycle.
type State string

const (
	StateIdle               State = "idle"
	StateValidating         State = "validating"
	StateAwaitingResolution State = "awaiting_resolution"
	StatePersisted          State = "persisted"
	StateCancelled          State = "cancelled"
)

// Outcome is the terminal result of one Save invocation.
type Outcome string

const (
	// OutcomePersisted means the sidecar file was rewritten with the record.
	OutcomePersisted Outcome = "persisted"
	// OutcomeCancelled means the user abandoned a collision; nothing changed.
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeValidationFailed means the candidate was rejected before any IO.
	OutcomeValidationFailed Outcome = "validation_failed"
	// OutcomeFailed means the save was accepted but persistence failed; the
	// user must retry manually.
	OutcomeFailed Outcome = "failed"
)

// Result reports what a Save invocation did.
type Result struct {
	Outcome     Outcome
	SessionID   string
	SidecarPath string
	// Record is the annotation that was persisted; zero unless
	// Outcome == OutcomePersisted.
	Record annotation.Record
	// Resolution names the collision choice that settled the save, empty
	// when no collision occurred.
	Resolution string
}
