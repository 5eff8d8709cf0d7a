package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Snapshot pairs one Instance with the artifact-specific datum valid at
// that point in history: the generated file name token.
type Snapshot struct {
	ID       uuid.UUID
	FileName FileName
	Meta     Instance
}

// Instance implements Instanced.
func (s Snapshot) Instance() Instance {
	return s.Meta
}

// Artifact is a file-backed entity: an identity plus the append-only
// history of its snapshots, with folder/extension bookkeeping and tags.
type Artifact struct {
	ID        uuid.UUID
	Folder    string
	Extension string
	Type      FileType
	Tags      []*Tag

	history *History[Snapshot]
	clock   Clock
}

// NewArtifact creates an artifact with its creation snapshot. The folder
// must not end in a path separator; the extension is stored without a
// leading dot. A nil clock falls back to a monotonic system clock.
func NewArtifact(folder, extension string, ftype FileType, level Level, clock Clock) (*Artifact, error) {
	if err := validateFolder(folder); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = NewMonotonicClock(SystemClock)
	}

	a := &Artifact{
		ID:        uuid.New(),
		Folder:    folder,
		Extension: strings.TrimPrefix(extension, "."),
		Type:      ftype,
		history:   NewHistory[Snapshot](nil),
		clock:     clock,
	}

	meta := NewInstance(level, clock)
	if err := a.history.Append(newSnapshot(meta)); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArtifactFromHistory rehydrates an artifact from persisted snapshots.
// The snapshots are sorted by instance time on construction.
func NewArtifactFromHistory(id uuid.UUID, folder, extension string, ftype FileType, snapshots []Snapshot, tags []*Tag, clock Clock) (*Artifact, error) {
	if err := validateFolder(folder); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = NewMonotonicClock(SystemClock)
	}
	return &Artifact{
		ID:        id,
		Folder:    folder,
		Extension: strings.TrimPrefix(extension, "."),
		Type:      ftype,
		Tags:      tags,
		history:   NewHistory(snapshots),
		clock:     clock,
	}, nil
}

func validateFolder(folder string) error {
	if folder == "" {
		return fmt.Errorf("%w: empty folder", ErrInvalidFolder)
	}
	if strings.HasSuffix(folder, "/") || strings.HasSuffix(folder, string(os.PathSeparator)) {
		return fmt.Errorf("%w: %q", ErrInvalidFolder, folder)
	}
	return nil
}

// newSnapshot pairs a fresh identity and file name with the instance.
// The file name shares the instance's stamp so tokens sort with history.
func newSnapshot(meta Instance) Snapshot {
	return Snapshot{
		ID:       uuid.New(),
		FileName: FileName{Time: meta.Time, Version: meta.Version},
		Meta:     meta,
	}
}

// Edit appends an update snapshot derived from the latest one.
func (a *Artifact) Edit(note string, level Level) (Snapshot, error) {
	latest, ok := a.history.Latest()
	if !ok {
		return Snapshot{}, ErrEmptyHistory
	}
	snap := newSnapshot(latest.Meta.Child(note, level, a.clock))
	if err := a.history.Append(snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Delete appends a deletion snapshot. The history keeps every prior entry.
func (a *Artifact) Delete(note string) (Snapshot, error) {
	latest, ok := a.history.Latest()
	if !ok {
		return Snapshot{}, ErrEmptyHistory
	}
	snap := newSnapshot(latest.Meta.Deletion(note, a.clock))
	if err := a.history.Append(snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Restore appends a restoration snapshot, the only transition accepted
// while the artifact is deleted.
func (a *Artifact) Restore(note string) (Snapshot, error) {
	latest, ok := a.history.Latest()
	if !ok {
		return Snapshot{}, ErrEmptyHistory
	}
	snap := newSnapshot(latest.Meta.Restoration(note, a.clock))
	if err := a.history.Append(snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Latest returns the most recent snapshot.
func (a *Artifact) Latest() (Snapshot, bool) {
	return a.history.Latest()
}

// History exposes the underlying history for queries.
func (a *Artifact) History() *History[Snapshot] {
	return a.history
}

// IsDeleted reports whether the latest snapshot is a deletion.
func (a *Artifact) IsDeleted() bool {
	return a.history.IsDeleted()
}

// Path builds the storage path of the latest snapshot.
func (a *Artifact) Path() (string, error) {
	latest, ok := a.history.Latest()
	if !ok {
		return "", ErrEmptyHistory
	}
	return latest.FileName.Path(a.Folder, a.Extension), nil
}

// AttachTag associates a tag with the artifact. Duplicate ids are ignored.
func (a *Artifact) AttachTag(t *Tag) {
	for _, existing := range a.Tags {
		if existing.ID == t.ID {
			return
		}
	}
	a.Tags = append(a.Tags, t)
}
