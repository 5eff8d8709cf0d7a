package core

import "github.com/google/uuid"

// TagSnapshot pairs one Instance with the tag value valid at that point in
// history.
type TagSnapshot struct {
	ID    uuid.UUID
	Value string
	Meta  Instance
}

// Instance implements Instanced.
func (s TagSnapshot) Instance() Instance {
	return s.Meta
}

// Tag is a named label entity with its own versioned history of values.
type Tag struct {
	ID uuid.UUID

	history *History[TagSnapshot]
	clock   Clock
}

// NewTag creates a tag with its creation snapshot holding the initial value.
func NewTag(value string, level Level, clock Clock) *Tag {
	if clock == nil {
		clock = NewMonotonicClock(SystemClock)
	}
	t := &Tag{
		ID:      uuid.New(),
		history: NewHistory[TagSnapshot](nil),
		clock:   clock,
	}
	meta := NewInstance(level, clock)
	// Append onto an empty history cannot fail.
	_ = t.history.Append(TagSnapshot{ID: uuid.New(), Value: value, Meta: meta})
	return t
}

// NewTagFromHistory rehydrates a tag from persisted snapshots.
func NewTagFromHistory(id uuid.UUID, snapshots []TagSnapshot, clock Clock) *Tag {
	if clock == nil {
		clock = NewMonotonicClock(SystemClock)
	}
	return &Tag{ID: id, history: NewHistory(snapshots), clock: clock}
}

// Set appends an update snapshot carrying the new value.
func (t *Tag) Set(value, note string, level Level) (TagSnapshot, error) {
	latest, ok := t.history.Latest()
	if !ok {
		return TagSnapshot{}, ErrEmptyHistory
	}
	snap := TagSnapshot{ID: uuid.New(), Value: value, Meta: latest.Meta.Child(note, level, t.clock)}
	if err := t.history.Append(snap); err != nil {
		return TagSnapshot{}, err
	}
	return snap, nil
}

// Delete appends a deletion snapshot. The value is carried over so the
// history remains self-describing.
func (t *Tag) Delete(note string) (TagSnapshot, error) {
	latest, ok := t.history.Latest()
	if !ok {
		return TagSnapshot{}, ErrEmptyHistory
	}
	snap := TagSnapshot{ID: uuid.New(), Value: latest.Value, Meta: latest.Meta.Deletion(note, t.clock)}
	if err := t.history.Append(snap); err != nil {
		return TagSnapshot{}, err
	}
	return snap, nil
}

// Restore appends a restoration snapshot.
func (t *Tag) Restore(note string) (TagSnapshot, error) {
	latest, ok := t.history.Latest()
	if !ok {
		return TagSnapshot{}, ErrEmptyHistory
	}
	snap := TagSnapshot{ID: uuid.New(), Value: latest.Value, Meta: latest.Meta.Restoration(note, t.clock)}
	if err := t.history.Append(snap); err != nil {
		return TagSnapshot{}, err
	}
	return snap, nil
}

// Value returns the latest value.
func (t *Tag) Value() (string, error) {
	latest, ok := t.history.Latest()
	if !ok {
		return "", ErrEmptyHistory
	}
	return latest.Value, nil
}

// Latest returns the most recent snapshot.
func (t *Tag) Latest() (TagSnapshot, bool) {
	return t.history.Latest()
}

// History exposes the underlying history for queries.
func (t *Tag) History() *History[TagSnapshot] {
	return t.history
}

// IsDeleted reports whether the latest snapshot is a deletion.
func (t *Tag) IsDeleted() bool {
	return t.history.IsDeleted()
}
