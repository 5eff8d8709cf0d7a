package core

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the contract for persisting entity histories and snapshot
// content. Adhering to this interface keeps the core independent of the
// underlying storage mechanism (filesystem, SQL, S3, etc).
type Store interface {
	// Initialize ensures the underlying storage is ready (e.g. create
	// directories).
	Initialize(ctx context.Context) error

	// WriteSnapshot persists the content bytes of one artifact snapshot
	// under its file name token.
	WriteSnapshot(ctx context.Context, a *Artifact, snap Snapshot, content []byte) error

	// ReadSnapshot retrieves the content bytes of one artifact snapshot.
	ReadSnapshot(ctx context.Context, a *Artifact, snap Snapshot) ([]byte, error)

	// SaveArtifact persists the artifact's history manifest.
	SaveArtifact(ctx context.Context, a *Artifact) error

	// LoadArtifact rehydrates an artifact, including its tags.
	LoadArtifact(ctx context.Context, id uuid.UUID) (*Artifact, error)

	// ListArtifacts rehydrates every known artifact.
	ListArtifacts(ctx context.Context) ([]*Artifact, error)

	// SaveTag persists the tag's history manifest.
	SaveTag(ctx context.Context, t *Tag) error

	// LoadTag rehydrates a tag.
	LoadTag(ctx context.Context, id uuid.UUID) (*Tag, error)

	// ListTags rehydrates every known tag.
	ListTags(ctx context.Context) ([]*Tag, error)
}

// Watchable defines an interface for stores that can observe external
// changes to the persisted vault.
type Watchable interface {
	// Watch emits events for vault changes matching the glob pattern.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
