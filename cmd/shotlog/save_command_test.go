package main

import (
	"os"
	"path/filepath"
	"testing"

	"shotlog/internal/annotation"
)

func TestSaveCommandWritesSidecar(t *testing.T) {
	configPath := writeTestConfig(t)
	media := filepath.Join(t.TempDir(), "clip.mp4")

	out, _, err := runCLI(t, configPath, "save", media, "-m", "hero enters frame", "-s", "ws", "--at", "00:01:30")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	requireContains(t, out, "Saved")

	sidecar := annotation.SidecarPath(media)
	data, err := os.ReadFile(sidecar)
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	if got := string(data); got != "00:01:30\thero enters frame\tws\n" {
		t.Fatalf("unexpected sidecar content %q", got)
	}
}

func TestSaveCommandElapsedPosition(t *testing.T) {
	configPath := writeTestConfig(t)
	media := filepath.Join(t.TempDir(), "clip.mp4")

	if _, _, err := runCLI(t, configPath, "save", media, "-m", "note", "--elapsed", "90.7"); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(annotation.SidecarPath(media))
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	if got := string(data); got != "00:01:30\tnote\tN/A\n" {
		t.Fatalf("unexpected sidecar content %q", got)
	}
}

func TestSaveCommandCollisionCancelsWithoutTerminal(t *testing.T) {
	configPath := writeTestConfig(t)
	dir := t.TempDir()
	media := filepath.Join(dir, "clip.mp4")
	sidecar := annotation.SidecarPath(media)
	existing := "00:01:30\toriginal\tWS\n"
	if err := os.WriteFile(sidecar, []byte(existing), 0o644); err != nil {
		t.Fatalf("seed sidecar: %v", err)
	}

	out, _, err := runCLI(t, configPath, "save", media, "-m", "replacement", "--at", "00:01:30")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	requireContains(t, out, "Save cancelled")

	data, err := os.ReadFile(sidecar)
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	if string(data) != existing {
		t.Fatalf("collision without a terminal must not change the sidecar, got %q", string(data))
	}
}

func TestSaveCommandRequiresDescription(t *testing.T) {
	configPath := writeTestConfig(t)
	media := filepath.Join(t.TempDir(), "clip.mp4")

	if _, _, err := runCLI(t, configPath, "save", media, "--at", "00:00:01"); err == nil {
		t.Fatal("expected missing --message to fail")
	}
}

func TestSaveCommandRejectsBadTimestamp(t *testing.T) {
	configPath := writeTestConfig(t)
	media := filepath.Join(t.TempDir(), "clip.mp4")

	if _, _, err := runCLI(t, configPath, "save", media, "-m", "note", "--at", "1:2:3"); err == nil {
		t.Fatal("expected malformed --at to fail")
	}
}
