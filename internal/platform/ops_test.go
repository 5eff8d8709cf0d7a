package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/stratum/pkg/adapters/fs"
	"github.com/aretw0/stratum/pkg/core"
)

func TestInit(t *testing.T) {
	t.Run("Creates Vault Layout", func(t *testing.T) {
		dir := t.TempDir()

		store, err := Init(dir, WithAutoInit(true))
		if err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if _, ok := store.(*fs.Store); !ok {
			t.Fatalf("expected *fs.Store, got %T", store)
		}

		system := filepath.Join(dir, fs.DefaultSystemDir)
		for _, sub := range []string{"artifacts", "tags"} {
			if _, err := os.Stat(filepath.Join(system, sub)); err != nil {
				t.Errorf("missing %s directory: %v", sub, err)
			}
		}
	})

	t.Run("Custom System Dir", func(t *testing.T) {
		dir := t.TempDir()

		if _, err := Init(dir, WithAutoInit(true), WithSystemDir(".vault")); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, ".vault", "artifacts")); err != nil {
			t.Errorf("custom system dir not created: %v", err)
		}
	})

	t.Run("Missing Vault Without AutoInit Fails", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "vault")

		if _, err := Init(dir); err == nil {
			t.Fatal("expected error for missing vault")
		}
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Error("vault directory must not be created")
		}
	})

	t.Run("Injected Store Short Circuits", func(t *testing.T) {
		injected := &initSpy{}

		store, err := Init("/does/not/matter", WithStore(injected))
		if err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if store != core.Store(injected) {
			t.Error("injected store was not returned")
		}
		if !injected.initialized {
			t.Error("injected store was not initialized")
		}
	})
}

// initSpy records Initialize calls; the remaining Store methods are unused
// by Init and simply satisfy the interface.
type initSpy struct {
	core.Store
	initialized bool
}

func (s *initSpy) Initialize(ctx context.Context) error {
	s.initialized = true
	return nil
}
