package player

import (
	"context"

	"shotlog/internal/timecode"
)

// Fixed is a playback source pinned to one position, used when the user
// supplies --at or --elapsed instead of querying a player.
type Fixed struct {
	position timecode.TimeCode
}

// NewFixed builds a playback source that always reports position.
func NewFixed(position timecode.TimeCode) Fixed {
	return Fixed{position: position}
}

// CurrentTimestamp returns the pinned position.
func (f Fixed) CurrentTimestamp(context.Context) (timecode.TimeCode, error) {
	return f.position, nil
}
