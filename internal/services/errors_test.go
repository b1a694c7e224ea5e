package services_test

import (
	"errors"
	"strings"
	"testing"

	"shotlog/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrIO, "store", "persist", "write failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"store", "persist", "write failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "player", "query", "no socket", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestClassification(t *testing.T) {
	if !services.IsValidation(services.Wrap(services.ErrValidation, "save", "validate", "empty description", nil)) {
		t.Fatal("expected validation classification")
	}
	if services.IsValidation(services.Wrap(services.ErrIO, "save", "persist", "disk full", nil)) {
		t.Fatal("io error misclassified as validation")
	}
	if !services.IsIO(services.Wrap(services.ErrIO, "save", "persist", "disk full", nil)) {
		t.Fatal("expected io classification")
	}
}
