package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"shotlog/internal/logging"
)

func TestConsoleFormatIncludesComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logging.WithComponent(logger, "save").Info("annotation persisted", "timestamp", "00:01:00")

	line := buf.String()
	if !strings.Contains(line, "INFO save: annotation persisted") {
		t.Fatalf("unexpected console line %q", line)
	}
	if !strings.Contains(line, "timestamp=00:01:00") {
		t.Fatalf("missing attribute in line %q", line)
	}
}

func TestConsoleFormatQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("saved", "description", "hero enters frame")
	if !strings.Contains(buf.String(), `description="hero enters frame"`) {
		t.Fatalf("value not quoted: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("should be dropped")
	logger.Warn("should appear")
	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Fatal("info record not filtered at warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Fatal("warn record missing")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("saved", "media", "clip.mp4")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "saved" || record["level"] != "info" {
		t.Fatalf("unexpected record %#v", record)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
