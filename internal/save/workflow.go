package save

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"shotlog/internal/annotation"
	"shotlog/internal/catalog"
	"shotlog/internal/collision"
	"shotlog/internal/logging"
	"shotlog/internal/notifications"
	"shotlog/internal/services"
	"shotlog/internal/timecode"
)

// PlaybackSource supplies the current playback position of the media under
// review. An error means the position is unavailable; the workflow then uses
// 00:00:00.
type PlaybackSource interface {
	CurrentTimestamp(ctx context.Context) (timecode.TimeCode, error)
}

// Prompter obtains the user's resolution choice when a save collides with an
// existing annotation. PresentCollision may block until the user decides; an
// error is treated as cancellation.
type Prompter interface {
	PresentCollision(ctx context.Context, existing, incoming annotation.Record) (collision.Choice, error)
}

// Request describes one save attempt.
type Request struct {
	MediaPath   string
	Description string
	ShotType    string
}

// Workflow drives a single save session from candidate construction through
// collision resolution to persistence. Instances are cheap; construct one per
// session. Saves against the same sidecar are serialized across processes
// with an advisory lock, everything else assumes the single-user model.
type Workflow struct {
	playback PlaybackSource
	prompter Prompter
	notifier notifications.Service
	journal  *catalog.Store
	logger   *slog.Logger

	state State
}

// Option customizes workflow construction.
type Option func(*Workflow)

// WithJournal records every persisted save in the catalog.
func WithJournal(store *catalog.Store) Option {
	return func(w *Workflow) {
		w.journal = store
	}
}

// New constructs a save workflow. The notifier is required; playback and
// prompter default to implementations that report an unavailable position and
// cancel on collision, which keeps non-interactive callers safe.
func New(playback PlaybackSource, prompter Prompter, notifier notifications.Service, logger *slog.Logger, opts ...Option) *Workflow {
	if playback == nil {
		playback = unavailablePlayback{}
	}
	if prompter == nil {
		prompter = cancelPrompter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &Workflow{
		playback: playback,
		prompter: prompter,
		notifier: notifier,
		logger:   logging.WithComponent(logger, "save"),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns the workflow's current lifecycle state.
func (w *Workflow) State() State {
	return w.state
}

// Save runs one complete save session. All failures are converted to a
// Result and a notification; no error escapes to the host beyond what the
// Result carries.
func (w *Workflow) Save(ctx context.Context, req Request) Result {
	sessionID := uuid.NewString()
	ctx = services.WithSessionID(ctx, sessionID)
	ctx = services.WithMediaPath(ctx, req.MediaPath)

	sidecarPath := annotation.SidecarPath(req.MediaPath)
	result := Result{SessionID: sessionID, SidecarPath: sidecarPath}
	logger := w.logger.With(slog.String("session_id", sessionID), slog.String("sidecar", sidecarPath))

	w.transition(logger, StateValidating)
	if strings.TrimSpace(req.Description) == "" {
		_ = w.notifier.NotifyValidationFailure(ctx, req.MediaPath, "description required")
		w.transition(logger, StateIdle)
		result.Outcome = OutcomeValidationFailed
		return result
	}

	lock := flock.New(sidecarPath + ".lock")
	locked, err := lock.TryLock()
	if err == nil && !locked {
		err = services.Wrap(services.ErrTransient, "save", "lock", "another save is in progress", nil)
	}
	if err != nil {
		_ = w.notifier.NotifyError(ctx, err, "sidecar lock")
		w.transition(logger, StateIdle)
		result.Outcome = OutcomeFailed
		return result
	}
	defer func() {
		_ = lock.Unlock()
	}()

	store, err := annotation.Load(sidecarPath)
	if err != nil {
		// Unreadable sidecars degrade to an empty store per the load
		// contract; an error here means the read itself broke mid-stream.
		_ = w.notifier.NotifyError(ctx, err, "sidecar read")
		w.transition(logger, StateIdle)
		result.Outcome = OutcomeFailed
		return result
	}
	if skipped := store.Skipped(); skipped > 0 {
		logger.Debug("skipped unparseable sidecar lines", slog.Int("count", skipped))
	}

	candidate := annotation.NewRecord(w.currentTimestamp(ctx, logger), req.Description, req.ShotType)
	logger.Debug("candidate built", slog.String("timestamp", candidate.Timestamp.String()))

	resolution := ""
	for {
		existing, collided := store.InsertIfAbsent(candidate)
		if !collided {
			break
		}

		w.transition(logger, StateAwaitingResolution)
		choice, promptErr := w.prompter.PresentCollision(ctx, existing, candidate)
		if promptErr != nil {
			logger.Warn("collision prompt failed, treating as cancel", slog.Any("error", promptErr))
			choice = collision.ChoiceCancel
		}
		logger.Debug("collision resolved", slog.String("choice", choice.String()))

		final, persist := collision.Resolve(candidate, choice, func() timecode.TimeCode {
			return w.currentTimestamp(ctx, logger)
		})
		if !persist {
			_ = w.notifier.NotifySaveCancelled(ctx, req.MediaPath)
			w.transition(logger, StateCancelled)
			result.Outcome = OutcomeCancelled
			return result
		}

		resolution = choice.String()
		if choice == collision.ChoiceProceed {
			store.Upsert(final)
			candidate = final
			break
		}
		// Refresh may land on another occupied timestamp; loop so the
		// user resolves that collision too instead of silently clobbering.
		candidate = final
	}

	if err := store.Persist(); err != nil {
		_ = w.notifier.NotifyError(ctx, err, "sidecar write")
		result.Outcome = OutcomeFailed
		return result
	}
	w.transition(logger, StatePersisted)

	result.Outcome = OutcomePersisted
	result.Record = candidate
	result.Resolution = resolution
	w.recordInJournal(ctx, logger, req, result)
	_ = w.notifier.NotifySaved(ctx, req.MediaPath, candidate)
	return result
}

func (w *Workflow) currentTimestamp(ctx context.Context, logger *slog.Logger) timecode.TimeCode {
	ts, err := w.playback.CurrentTimestamp(ctx)
	if err != nil {
		logger.Debug("playback position unavailable, using 00:00:00", slog.Any("error", err))
		return timecode.TimeCode{}
	}
	return ts
}

func (w *Workflow) recordInJournal(ctx context.Context, logger *slog.Logger, req Request, result Result) {
	if w.journal == nil {
		return
	}
	_, err := w.journal.RecordSave(ctx, catalog.Save{
		SessionID:   result.SessionID,
		MediaPath:   req.MediaPath,
		SidecarPath: result.SidecarPath,
		Timestamp:   result.Record.Timestamp.String(),
		Description: result.Record.Description,
		ShotType:    result.Record.ShotType,
		Resolution:  result.Resolution,
	})
	if err != nil {
		// Journal failures never fail the save; the sidecar already holds
		// the annotation.
		logger.Warn("catalog journal write failed", slog.Any("error", err))
	}
}

func (w *Workflow) transition(logger *slog.Logger, next State) {
	logger.Debug("state transition", slog.String("from", string(w.state)), slog.String("to", string(next)))
	w.state = next
}

type unavailablePlayback struct{}

func (unavailablePlayback) CurrentTimestamp(context.Context) (timecode.TimeCode, error) {
	return timecode.TimeCode{}, services.Wrap(services.ErrNotFound, "save", "playback", "no playback source configured", nil)
}

type cancelPrompter struct{}

func (cancelPrompter) PresentCollision(context.Context, annotation.Record, annotation.Record) (collision.Choice, error) {
	return collision.ChoiceCancel, nil
}
