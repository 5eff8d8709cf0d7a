package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveVaultPath(t *testing.T) {
	devRoot := filepath.Join(os.TempDir(), "stratum-dev")

	t.Run("Passthrough Without Force", func(t *testing.T) {
		if got := ResolveVaultPath("./my-vault", false); got != "./my-vault" {
			t.Errorf("got %q, want ./my-vault", got)
		}
	})

	t.Run("Empty Path Defaults To Cwd", func(t *testing.T) {
		if got := ResolveVaultPath("", false); got != "." {
			t.Errorf("got %q, want .", got)
		}
	})

	t.Run("Rerooted Into Dev Namespace", func(t *testing.T) {
		got := ResolveVaultPath("./projects/my-vault", true)
		want := filepath.Join(devRoot, "my-vault")
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Dot Path Uses Default Name", func(t *testing.T) {
		got := ResolveVaultPath(".", true)
		want := filepath.Join(devRoot, "default")
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Temp Paths Are Trusted", func(t *testing.T) {
		dir := t.TempDir()
		if got := ResolveVaultPath(dir, true); got != dir {
			t.Errorf("got %q, want %q", got, dir)
		}
	})
}

func TestIsDevRun(t *testing.T) {
	// Test binaries are built into the temp directory, so this must hold
	// while the suite itself is running.
	if !IsDevRun() {
		exe, _ := os.Executable()
		if !strings.HasSuffix(exe, ".test") {
			t.Skipf("unexpected executable %q", exe)
		}
		t.Error("IsDevRun returned false inside go test")
	}
}
