package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadVaultConfig(t *testing.T) {
	t.Run("Missing File Yields Zero Config", func(t *testing.T) {
		cfg, err := loadVaultConfig(t.TempDir())
		if err != nil {
			t.Fatalf("loadVaultConfig failed: %v", err)
		}
		if cfg.SystemDir != "" || cfg.EventBuffer != 0 {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("Reads Settings", func(t *testing.T) {
		dir := t.TempDir()
		data := []byte("system_dir: .vault\nevent_buffer: 25\n")
		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := loadVaultConfig(dir)
		if err != nil {
			t.Fatalf("loadVaultConfig failed: %v", err)
		}
		if cfg.SystemDir != ".vault" {
			t.Errorf("SystemDir = %q, want .vault", cfg.SystemDir)
		}
		if cfg.EventBuffer != 25 {
			t.Errorf("EventBuffer = %d, want 25", cfg.EventBuffer)
		}
	})

	t.Run("Invalid YAML Fails", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(":\t:"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadVaultConfig(dir); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

func TestInitHonorsConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("system_dir: .layers\n")
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Init(dir, WithAutoInit(true)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".layers", "artifacts")); err != nil {
		t.Errorf("configured system dir not created: %v", err)
	}
}
