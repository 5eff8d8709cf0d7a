package platform

import (
	"context"

	"github.com/aretw0/stratum/pkg/adapters/fs"
	"github.com/aretw0/stratum/pkg/core"
)

// Init initializes a vault store based on the provided options.
// It resolves the vault path (re-rooted into a temp directory for dev/test
// runs), ensures the directory tree exists, and returns the configured
// core.Store.
func Init(path string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// If a custom store is injected via options, use it.
	if o.store != nil {
		return o.store, o.store.Initialize(context.Background())
	}

	// Safety & path resolution.
	useTemp := o.boolOpt("temp_dir") || IsDevRun()
	resolvedPath := ResolveVaultPath(path, useTemp)

	if o.logger != nil && useTemp {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolvedPath)
	}

	// Options win over the per-vault config file.
	systemDir := o.stringOpt("system_dir")
	if systemDir == "" {
		cfg, err := loadVaultConfig(resolvedPath)
		if err != nil {
			return nil, err
		}
		systemDir = cfg.SystemDir
	}

	store := fs.NewStore(fs.Config{
		Path:      resolvedPath,
		AutoInit:  o.boolOpt("auto_init"),
		MustExist: o.boolOpt("must_exist") && !useTemp,
		SystemDir: systemDir,
		Logger:    o.logger,
		Clock:     o.clock,
	})
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}
