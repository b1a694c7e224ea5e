package notifications_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shotlog/internal/annotation"
	"shotlog/internal/config"
	"shotlog/internal/logging"
	"shotlog/internal/notifications"
	"shotlog/internal/timecode"
)

func testRecord() annotation.Record {
	return annotation.NewRecord(timecode.New(0, 1, 0), "hero enters frame", "WS")
}

func TestNewServiceWithoutTopicIsNoop(t *testing.T) {
	cfg := config.Default()
	svc := notifications.NewService(&cfg)
	if err := svc.NotifySaved(context.Background(), "clip.mp4", testRecord()); err != nil {
		t.Fatalf("noop service returned error: %v", err)
	}
	if err := svc.TestNotification(context.Background()); err != nil {
		t.Fatalf("noop test notification returned error: %v", err)
	}
}

func TestNtfySendsSaveNotification(t *testing.T) {
	var gotTitle, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("Title")
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		gotBody = buf.String()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.NewService(&cfg)

	if err := svc.NotifySaved(context.Background(), "clip.mp4", testRecord()); err != nil {
		t.Fatalf("NotifySaved failed: %v", err)
	}
	if gotTitle != "Shotlog - Saved" {
		t.Fatalf("unexpected title %q", gotTitle)
	}
	if !strings.Contains(gotBody, "00:01:00") || !strings.Contains(gotBody, "WS") {
		t.Fatalf("unexpected body %q", gotBody)
	}
}

func TestNtfyErrorStatusSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.NewService(&cfg)

	if err := svc.TestNotification(context.Background()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestNtfyRespectsToggles(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	cfg.Notifications.Saves = false
	cfg.Notifications.Errors = false
	svc := notifications.NewService(&cfg)

	ctx := context.Background()
	_ = svc.NotifySaved(ctx, "clip.mp4", testRecord())
	_ = svc.NotifyValidationFailure(ctx, "clip.mp4", "description required")
	_ = svc.NotifyError(ctx, errors.New("boom"), "persist")
	if requests != 0 {
		t.Fatalf("expected suppressed notifications, saw %d requests", requests)
	}
}

func TestWithLoggerSurfacesAndSwallows(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.WithLogger(notifications.NewService(&cfg), logger)

	if err := svc.NotifySaved(context.Background(), "clip.mp4", testRecord()); err != nil {
		t.Fatalf("logging decorator must swallow transport errors, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "saved and sorted") {
		t.Fatalf("console surfacing missing: %q", out)
	}
	if !strings.Contains(out, "notification delivery failed") {
		t.Fatalf("transport failure not logged: %q", out)
	}
}
