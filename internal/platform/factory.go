package platform

import (
	"context"

	"github.com/aretw0/stratum/pkg/core"
)

// New wires a store and a domain service for the vault at path.
//
//	svc, err := stratum.New("./path/to/vault", stratum.WithAutoInit(true))
func New(path string, opts ...Option) (*core.Service, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	// Parse options again for the service wiring.
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var svcOpts []core.ServiceOption
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithLogger(o.logger))
	}
	if o.clock != nil {
		svcOpts = append(svcOpts, core.WithClock(o.clock))
	}

	size := o.intOpt("event_buffer")
	if size == 0 {
		useTemp := o.boolOpt("temp_dir") || IsDevRun()
		if cfg, err := loadVaultConfig(ResolveVaultPath(path, useTemp)); err == nil {
			size = cfg.EventBuffer
		}
	}
	if size > 0 {
		svcOpts = append(svcOpts, core.WithEventBuffer(size))
	}

	service := core.NewService(store, svcOpts...)
	if err := service.Load(context.Background()); err != nil {
		return nil, err
	}

	return service, nil
}
