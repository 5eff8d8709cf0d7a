package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun reports whether the current binary was built by `go run` or
// `go test`. Both place the executable under the system temp directory,
// and test binaries carry a .test suffix.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveVaultPath applies the dev sandbox. When forceTemp is set, vault
// paths are re-rooted under a namespaced temp directory so a stray test or
// `go run` never writes into a real workspace. Paths already inside the
// system temp directory (t.TempDir) are kept as given.
func ResolveVaultPath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return "."
		}
		return userPath
	}

	clean := filepath.Clean(userPath)
	if rel, err := filepath.Rel(os.TempDir(), clean); err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	subName := filepath.Base(clean)
	if userPath == "" || subName == "." || subName == string(os.PathSeparator) {
		subName = "default"
	}
	return filepath.Join(os.TempDir(), "stratum-dev", subName)
}
