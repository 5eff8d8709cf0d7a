package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot recursively looks upwards for a vault root indicator.
// Indicators are: a .stratum directory or a stratum.yaml file.
// If found, returns the absolute path to the root.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ".stratum") || hasFile(dir, ConfigFileName) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("vault root not found above %s", startDir)
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
