package main

import (
	"path/filepath"
	"testing"
)

func TestHistoryCommandShowsJournaledSaves(t *testing.T) {
	configPath := writeTestConfig(t)
	media := filepath.Join(t.TempDir(), "clip.mp4")

	if _, _, err := runCLI(t, configPath, "save", media, "-m", "opening", "-s", "WS", "--at", "00:00:10"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, _, err := runCLI(t, configPath, "save", media, "-m", "closing", "--at", "00:09:00"); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, _, err := runCLI(t, configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "00:00:10")
	requireContains(t, out, "00:09:00")
	requireContains(t, out, "clip.mp4")

	out, _, err = runCLI(t, configPath, "history", "--media", media, "--limit", "1")
	if err != nil {
		t.Fatalf("history filtered: %v", err)
	}
	requireContains(t, out, "closing")

	out, _, err = runCLI(t, configPath, "history", "--summary")
	if err != nil {
		t.Fatalf("history summary: %v", err)
	}
	requireContains(t, out, "clip.mp4")
	requireContains(t, out, "2")
}

func TestHistoryCommandEmptyCatalog(t *testing.T) {
	configPath := writeTestConfig(t)

	out, _, err := runCLI(t, configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No saves recorded yet")
}
