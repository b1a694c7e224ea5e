package testsupport

import (
	"testing"

	"shotlog/internal/catalog"
	"shotlog/internal/config"
)

// MustOpenCatalog opens the catalog for a test config and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
