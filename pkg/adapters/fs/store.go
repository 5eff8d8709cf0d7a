package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/aretw0/stratum/pkg/core"
)

// DefaultSystemDir is the hidden directory holding history manifests.
const DefaultSystemDir = ".stratum"

// Store implements core.Store on the local filesystem. Snapshot content
// lives at <root>/<folder>/<token>.<ext>; history manifests live under the
// system directory as YAML.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string
	AutoInit  bool
	MustExist bool
	SystemDir string // e.g. ".stratum"
	Logger    *slog.Logger
	Clock     core.Clock
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize performs the necessary setup for the store. A missing vault
// root is only created when AutoInit is set; otherwise opening it is an
// error. System directories are always ensured once the root exists.
func (s *Store) Initialize(ctx context.Context) error {
	info, err := os.Stat(s.Path)
	switch {
	case os.IsNotExist(err):
		if s.config.MustExist || !s.config.AutoInit {
			return fmt.Errorf("vault path does not exist: %s", s.Path)
		}
		if err := os.MkdirAll(s.Path, 0755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("vault path is not a directory: %s", s.Path)
	}

	for _, sub := range []string{"artifacts", "tags"} {
		if err := os.MkdirAll(filepath.Join(s.Path, s.config.SystemDir, sub), 0755); err != nil {
			return fmt.Errorf("failed to create system directory: %w", err)
		}
	}
	return nil
}

func (s *Store) snapshotPath(a *core.Artifact, snap core.Snapshot) string {
	return filepath.Join(s.Path, filepath.FromSlash(snap.FileName.Path(a.Folder, a.Extension)))
}

func (s *Store) manifestPath(kind string, id uuid.UUID) string {
	return filepath.Join(s.Path, s.config.SystemDir, kind, id.String()+".yaml")
}

// WriteSnapshot persists snapshot content atomically under its token.
func (s *Store) WriteSnapshot(ctx context.Context, a *core.Artifact, snap core.Snapshot, content []byte) error {
	path := s.snapshotPath(a, snap)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", a.Folder, err)
	}
	if err := writeFileAtomic(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", snap.ID, err)
	}
	s.config.Logger.Debug("snapshot written", "path", path)
	return nil
}

// ReadSnapshot retrieves snapshot content.
func (s *Store) ReadSnapshot(ctx context.Context, a *core.Artifact, snap core.Snapshot) ([]byte, error) {
	content, err := os.ReadFile(s.snapshotPath(a, snap))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: snapshot %s", core.ErrNotFound, snap.ID)
	}
	return content, err
}

// SaveArtifact persists the artifact's history manifest.
func (s *Store) SaveArtifact(ctx context.Context, a *core.Artifact) error {
	data, err := encodeArtifactManifest(a)
	if err != nil {
		return fmt.Errorf("failed to encode manifest for %s: %w", a.ID, err)
	}
	return writeFileAtomic(s.manifestPath("artifacts", a.ID), data, 0644)
}

// LoadArtifact rehydrates an artifact and its tags from manifests.
func (s *Store) LoadArtifact(ctx context.Context, id uuid.UUID) (*core.Artifact, error) {
	data, err := os.ReadFile(s.manifestPath("artifacts", id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: artifact %s", core.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return s.decodeArtifact(ctx, data)
}

// ListArtifacts rehydrates every artifact with a manifest.
func (s *Store) ListArtifacts(ctx context.Context) ([]*core.Artifact, error) {
	ids, err := s.manifestIDs("artifacts")
	if err != nil {
		return nil, err
	}

	artifacts := make([]*core.Artifact, 0, len(ids))
	for _, id := range ids {
		a, err := s.LoadArtifact(ctx, id)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// SaveTag persists the tag's history manifest.
func (s *Store) SaveTag(ctx context.Context, t *core.Tag) error {
	data, err := encodeTagManifest(t)
	if err != nil {
		return fmt.Errorf("failed to encode manifest for %s: %w", t.ID, err)
	}
	return writeFileAtomic(s.manifestPath("tags", t.ID), data, 0644)
}

// LoadTag rehydrates a tag from its manifest.
func (s *Store) LoadTag(ctx context.Context, id uuid.UUID) (*core.Tag, error) {
	data, err := os.ReadFile(s.manifestPath("tags", id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: tag %s", core.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return decodeTagManifest(data, s.config.Clock)
}

// ListTags rehydrates every tag with a manifest.
func (s *Store) ListTags(ctx context.Context) ([]*core.Tag, error) {
	ids, err := s.manifestIDs("tags")
	if err != nil {
		return nil, err
	}

	tags := make([]*core.Tag, 0, len(ids))
	for _, id := range ids {
		t, err := s.LoadTag(ctx, id)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func (s *Store) manifestIDs(kind string) ([]uuid.UUID, error) {
	dir := filepath.Join(s.Path, s.config.SystemDir, kind)
	matches, err := doublestar.Glob(os.DirFS(dir), "*.yaml")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s manifests: %w", kind, err)
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		id, err := uuid.Parse(strings.TrimSuffix(filepath.Base(m), ".yaml"))
		if err != nil {
			// Foreign files in the system dir are skipped, not fatal.
			s.config.Logger.Debug("skipping non-manifest file", "name", m)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListSnapshotTokens lists the snapshot tokens present on disk for an
// artifact, sorted chronologically (tokens sort as plain strings).
func (s *Store) ListSnapshotTokens(a *core.Artifact) ([]string, error) {
	dir := filepath.Join(s.Path, filepath.FromSlash(a.Folder))
	matches, err := doublestar.Glob(os.DirFS(dir), "*_*-*-*."+a.Extension)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		token := strings.TrimSuffix(filepath.Base(m), "."+a.Extension)
		if _, err := core.ParseFileName(token); err != nil {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
