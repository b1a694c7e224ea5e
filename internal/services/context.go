package services

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	mediaPathKey contextKey = "media_path"
)

// WithSessionID annotates context with the save session identifier.
func WithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext extracts the save session identifier if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sessionIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithMediaPath annotates context with the media file under review.
func WithMediaPath(ctx context.Context, path string) context.Context {
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, mediaPathKey, path)
}

// MediaPathFromContext extracts the media file path if present.
func MediaPathFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(mediaPathKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
