package stratum

import (
	"log/slog"

	"github.com/aretw0/stratum/internal/platform"
	"github.com/aretw0/stratum/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation.

// --- Configuration ---

// Option defines a functional option for configuring Stratum.
type Option = platform.Option

// WithAutoInit enables automatic initialization of the vault (creates the directory tree).
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock injects the clock used to stamp lifecycle events.
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".stratum").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithEventBuffer allows specifying the size of the event channel buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New creates a new Stratum Service.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a vault store explicitly.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveVaultPath determines the actual path for the vault based on safety rules.
func ResolveVaultPath(userPath string, forceTemp bool) string {
	return platform.ResolveVaultPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindVaultRoot recursively looks upwards for a vault root indicator.
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// --- Semantic Change Notes ---

const (
	ChangeTypeFeat     = platform.ChangeTypeFeat
	ChangeTypeFix      = platform.ChangeTypeFix
	ChangeTypeDocs     = platform.ChangeTypeDocs
	ChangeTypeStyle    = platform.ChangeTypeStyle
	ChangeTypeRefactor = platform.ChangeTypeRefactor
	ChangeTypePerf     = platform.ChangeTypePerf
	ChangeTypeTest     = platform.ChangeTypeTest
	ChangeTypeChore    = platform.ChangeTypeChore
)

// FormatChangeNote builds a Conventional Commit style change note.
func FormatChangeNote(ctype, scope, subject, body string) string {
	return platform.FormatChangeNote(ctype, scope, subject, body)
}

// AppendFooter appends the Stratum footer to an arbitrary note.
func AppendFooter(msg string) string {
	return platform.AppendFooter(msg)
}
