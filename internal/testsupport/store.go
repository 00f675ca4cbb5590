package testsupport

import (
	"testing"

	"dvrshelf/internal/config"
	"dvrshelf/internal/store"
)

// MustOpenStore opens a catalog store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}
