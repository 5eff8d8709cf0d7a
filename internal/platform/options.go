package platform

import (
	"log/slog"

	"github.com/aretw0/stratum/pkg/core"
)

// options holds the internal configuration for the Stratum service.
type options struct {
	store  core.Store
	logger *slog.Logger
	clock  core.Clock
	config map[string]interface{}
}

// Option defines a functional option for configuring Stratum.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		config: make(map[string]interface{}),
	}
}

func (o *options) boolOpt(key string) bool {
	v, _ := o.config[key].(bool)
	return v
}

func (o *options) stringOpt(key string) string {
	v, _ := o.config[key].(string)
	return v
}

func (o *options) intOpt(key string) int {
	v, _ := o.config[key].(int)
	return v
}

// WithAutoInit enables automatic initialization of the vault (creates the
// directory tree).
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".stratum").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.config["system_dir"] = name
	}
}

// WithEventBuffer allows specifying the size of the event channel buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock injects the clock used to stamp lifecycle events.
// Defaults to a monotonic wrapper around the system clock.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithStore allows injecting a custom storage adapter (e.g. mock, s3).
// If provided, the default filesystem adapter will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}
