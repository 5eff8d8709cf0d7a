package platform

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-vault configuration file. Its presence
// also marks a directory as a vault root for FindRoot.
const ConfigFileName = "stratum.yaml"

// VaultConfig holds per-vault settings read from stratum.yaml. Functional
// options take precedence over the file.
type VaultConfig struct {
	SystemDir   string `yaml:"system_dir"`
	EventBuffer int    `yaml:"event_buffer"`
}

// loadVaultConfig reads the vault's config file. A missing file yields the
// zero config.
func loadVaultConfig(root string) (VaultConfig, error) {
	var cfg VaultConfig

	data, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
