package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

const defaultEventBuffer = 100

// Service handles the business logic for versioned entities. It owns the
// in-memory entity set, serializes mutations (history appends are
// check-then-act and not atomic across callers) and persists through a
// Store.
type Service struct {
	mu    sync.RWMutex
	store Store
	clock Clock
	log   *slog.Logger

	artifacts map[uuid.UUID]*Artifact
	tags      map[uuid.UUID]*Tag

	events          chan Event
	eventBufferSize int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = logger
	}
}

// WithClock injects the clock used to stamp lifecycle events.
func WithClock(clock Clock) ServiceOption {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithEventBuffer sets the size of the event channel buffer.
func WithEventBuffer(size int) ServiceOption {
	return func(s *Service) {
		if size > 0 {
			s.eventBufferSize = size
		}
	}
}

// NewService creates a new Service on top of a Store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:           store,
		artifacts:       make(map[uuid.UUID]*Artifact),
		tags:            make(map[uuid.UUID]*Tag),
		eventBufferSize: defaultEventBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewMonotonicClock(SystemClock)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.events = make(chan Event, s.eventBufferSize)
	return s
}

// Load hydrates the in-memory entity set from the store.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags, err := s.store.ListTags(ctx)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	for _, t := range tags {
		s.tags[t.ID] = t
	}

	artifacts, err := s.store.ListArtifacts(ctx)
	if err != nil {
		return fmt.Errorf("load artifacts: %w", err)
	}
	for _, a := range artifacts {
		s.artifacts[a.ID] = a
	}

	s.log.Debug("vault loaded", "artifacts", len(s.artifacts), "tags", len(s.tags))
	return nil
}

// CreateArtifact creates a file-backed artifact with its initial content.
func (s *Service) CreateArtifact(ctx context.Context, folder, extension string, ftype FileType, level Level, content []byte) (*Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := NewArtifact(folder, extension, ftype, level, s.clock)
	if err != nil {
		return nil, err
	}

	snap, _ := a.Latest()
	if err := s.store.WriteSnapshot(ctx, a, snap, content); err != nil {
		return nil, err
	}
	if err := s.store.SaveArtifact(ctx, a); err != nil {
		return nil, err
	}

	s.artifacts[a.ID] = a
	s.emit(Event{Type: EventCreate, ID: a.ID.String(), Time: snap.Meta.Time})
	s.log.Info("artifact created", "id", a.ID, "version", snap.Meta.Version)
	return a, nil
}

// EditArtifact appends an update snapshot with new content.
func (s *Service) EditArtifact(ctx context.Context, id uuid.UUID, content []byte, note string, level Level) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.artifacts[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	snap, err := a.Edit(note, level)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.store.WriteSnapshot(ctx, a, snap, content); err != nil {
		return Snapshot{}, err
	}
	if err := s.store.SaveArtifact(ctx, a); err != nil {
		return Snapshot{}, err
	}

	s.emit(Event{Type: EventModify, ID: id.String(), Time: snap.Meta.Time})
	s.log.Info("artifact edited", "id", id, "version", snap.Meta.Version)
	return snap, nil
}

// DeleteArtifact appends a deletion snapshot. History and content are kept.
func (s *Service) DeleteArtifact(ctx context.Context, id uuid.UUID, note string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.artifacts[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	snap, err := a.Delete(note)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.store.SaveArtifact(ctx, a); err != nil {
		return Snapshot{}, err
	}

	s.emit(Event{Type: EventDelete, ID: id.String(), Time: snap.Meta.Time})
	s.log.Info("artifact deleted", "id", id, "version", snap.Meta.Version)
	return snap, nil
}

// RestoreArtifact appends a restoration snapshot. The content of the last
// pre-deletion snapshot is re-published under the new token.
func (s *Service) RestoreArtifact(ctx context.Context, id uuid.UUID, note string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.artifacts[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	content, err := s.latestContent(ctx, a)
	if err != nil {
		return Snapshot{}, err
	}

	snap, err := a.Restore(note)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.store.WriteSnapshot(ctx, a, snap, content); err != nil {
		return Snapshot{}, err
	}
	if err := s.store.SaveArtifact(ctx, a); err != nil {
		return Snapshot{}, err
	}

	s.emit(Event{Type: EventRestore, ID: id.String(), Time: snap.Meta.Time})
	s.log.Info("artifact restored", "id", id, "version", snap.Meta.Version)
	return snap, nil
}

// latestContent finds the newest snapshot that has content on disk, i.e.
// the newest non-deletion entry.
func (s *Service) latestContent(ctx context.Context, a *Artifact) ([]byte, error) {
	entries := a.History().All()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Meta.Kind == KindDeletion {
			continue
		}
		return s.store.ReadSnapshot(ctx, a, entries[i])
	}
	return nil, ErrEmptyHistory
}

// ReadArtifact returns the content of the artifact's latest snapshot.
// Reading a deleted artifact fails with ErrDeleted.
func (s *Service) ReadArtifact(ctx context.Context, id uuid.UUID) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artifacts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if a.IsDeleted() {
		return nil, ErrDeleted
	}
	return s.latestContent(ctx, a)
}

// GetArtifact returns an artifact by id.
func (s *Service) GetArtifact(id uuid.UUID) (*Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artifacts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return a, nil
}

// ListArtifacts returns all known artifacts.
func (s *Service) ListArtifacts() []*Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Artifact, 0, len(s.artifacts))
	for _, a := range s.artifacts {
		out = append(out, a)
	}
	return out
}

// CreateTag creates a tag with an initial value.
func (s *Service) CreateTag(ctx context.Context, value string, level Level) (*Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := NewTag(value, level, s.clock)
	if err := s.store.SaveTag(ctx, t); err != nil {
		return nil, err
	}
	s.tags[t.ID] = t

	snap, _ := t.Latest()
	s.emit(Event{Type: EventCreate, ID: t.ID.String(), Time: snap.Meta.Time})
	return t, nil
}

// SetTag appends a new value snapshot to a tag.
func (s *Service) SetTag(ctx context.Context, id uuid.UUID, value, note string, level Level) (TagSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[id]
	if !ok {
		return TagSnapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	snap, err := t.Set(value, note, level)
	if err != nil {
		return TagSnapshot{}, err
	}
	if err := s.store.SaveTag(ctx, t); err != nil {
		return TagSnapshot{}, err
	}
	s.emit(Event{Type: EventModify, ID: id.String(), Time: snap.Meta.Time})
	return snap, nil
}

// DeleteTag appends a deletion snapshot to a tag.
func (s *Service) DeleteTag(ctx context.Context, id uuid.UUID, note string) (TagSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[id]
	if !ok {
		return TagSnapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	snap, err := t.Delete(note)
	if err != nil {
		return TagSnapshot{}, err
	}
	if err := s.store.SaveTag(ctx, t); err != nil {
		return TagSnapshot{}, err
	}
	s.emit(Event{Type: EventDelete, ID: id.String(), Time: snap.Meta.Time})
	return snap, nil
}

// RestoreTag appends a restoration snapshot to a tag.
func (s *Service) RestoreTag(ctx context.Context, id uuid.UUID, note string) (TagSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[id]
	if !ok {
		return TagSnapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	snap, err := t.Restore(note)
	if err != nil {
		return TagSnapshot{}, err
	}
	if err := s.store.SaveTag(ctx, t); err != nil {
		return TagSnapshot{}, err
	}
	s.emit(Event{Type: EventRestore, ID: id.String(), Time: snap.Meta.Time})
	return snap, nil
}

// GetTag returns a tag by id.
func (s *Service) GetTag(id uuid.UUID) (*Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tags[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t, nil
}

// ListTags returns all known tags.
func (s *Service) ListTags() []*Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t)
	}
	return out
}

// TagArtifact associates an existing tag with an existing artifact and
// persists the artifact manifest.
func (s *Service) TagArtifact(ctx context.Context, artifactID, tagID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.artifacts[artifactID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, artifactID)
	}
	t, ok := s.tags[tagID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, tagID)
	}

	a.AttachTag(t)
	return s.store.SaveArtifact(ctx, a)
}

// Events exposes the service's event stream. Events are dropped when the
// buffer is full rather than blocking mutations.
func (s *Service) Events() <-chan Event {
	return s.events
}

// Watch observes external changes in the store if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}

func (s *Service) emit(e Event) {
	select {
	case s.events <- e:
	default:
		s.log.Debug("event buffer full, dropping", "event", e)
	}
}
