package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shotlog/internal/annotation"
	"shotlog/internal/config"
)

const userAgent = "Shotlog/0.1.0"

// Service defines the notification surface exposed to the save workflow.
type Service interface {
	NotifySaved(ctx context.Context, mediaPath string, rec annotation.Record) error
	NotifySaveCancelled(ctx context.Context, mediaPath string) error
	NotifyValidationFailure(ctx context.Context, mediaPath, reason string) error
	NotifyError(ctx context.Context, err error, contextLabel string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint:   topic,
		client:     &http.Client{Timeout: timeout},
		sendSaves:  cfg.Notifications.Saves,
		sendErrors: cfg.Notifications.Errors,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint   string
	client     *http.Client
	sendSaves  bool
	sendErrors bool
}

func (n *ntfyService) NotifySaved(ctx context.Context, mediaPath string, rec annotation.Record) error {
	if !n.sendSaves {
		return nil
	}
	data := payload{
		title:   "Shotlog - Saved",
		message: fmt.Sprintf("Saved %s (%s) at %s", strings.TrimSpace(rec.Description), rec.ShotType, rec.Timestamp),
		tags:    []string{"shotlog", "save", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifySaveCancelled(ctx context.Context, mediaPath string) error {
	if !n.sendSaves {
		return nil
	}
	data := payload{
		title:   "Shotlog - Cancelled",
		message: fmt.Sprintf("Save cancelled for %s", mediaPath),
		tags:    []string{"shotlog", "save", "cancelled"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyValidationFailure(ctx context.Context, mediaPath, reason string) error {
	if !n.sendErrors {
		return nil
	}
	data := payload{
		title:   "Shotlog - Not Saved",
		message: fmt.Sprintf("Save rejected for %s: %s", mediaPath, strings.TrimSpace(reason)),
		tags:    []string{"shotlog", "validation"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	if !n.sendErrors {
		return nil
	}
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" with ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "Shotlog - Error",
		message:  builder.String(),
		tags:     []string{"shotlog", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Shotlog - Test",
		message:  "Notification system test",
		tags:     []string{"shotlog", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifySaved(context.Context, string, annotation.Record) error  { return nil }
func (noopService) NotifySaveCancelled(context.Context, string) error             { return nil }
func (noopService) NotifyValidationFailure(context.Context, string, string) error { return nil }
func (noopService) NotifyError(context.Context, error, string) error              { return nil }
func (noopService) TestNotification(context.Context) error                        { return nil }
