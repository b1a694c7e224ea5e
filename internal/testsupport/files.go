package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteSidecar writes raw sidecar content next to a fake media file and
// returns both paths.
func WriteSidecar(t testing.TB, dir, baseName, content string) (mediaPath, sidecarPath string) {
	t.Helper()

	mediaPath = filepath.Join(dir, baseName+".mp4")
	sidecarPath = filepath.Join(dir, baseName+".txt")
	if err := os.WriteFile(mediaPath, []byte("not really video"), 0o644); err != nil {
		t.Fatalf("write media stub: %v", err)
	}
	if err := os.WriteFile(sidecarPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}
	return mediaPath, sidecarPath
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
