package core

import "slices"

// Instanced is the capability a payload must expose to live in a History:
// read access to its own Instance. The history does not know or care about
// payload-specific fields beyond this.
type Instanced interface {
	Instance() Instance
}

// History is an ordered, append-only sequence of payloads, each carrying an
// Instance. It enforces non-decreasing timestamps and the
// deleted-until-restored rule. Entries are never removed; deletion is itself
// an appended event.
//
// History is not goroutine-safe. Append is check-then-act against the latest
// entry, so concurrent writers must be serialized externally.
type History[P Instanced] struct {
	entries []P
}

// NewHistory builds a history from an initial set of payloads, stable-sorted
// by ascending instance time. Out-of-order input is sorted rather than
// rejected; only Append enforces ordering strictly.
func NewHistory[P Instanced](payloads []P) *History[P] {
	entries := make([]P, len(payloads))
	copy(entries, payloads)
	slices.SortStableFunc(entries, func(a, b P) int {
		return a.Instance().Time.Compare(b.Instance().Time)
	})
	return &History[P]{entries: entries}
}

// Append adds a payload to the end of the history. It rejects payloads
// stamped earlier than the latest entry with ErrOutOfOrder, and any
// non-restoration payload on a deleted history with ErrDeleted. On
// rejection the history is left unchanged.
func (h *History[P]) Append(p P) error {
	if n := len(h.entries); n > 0 {
		latest := h.entries[n-1].Instance()
		if p.Instance().Time.Before(latest.Time) {
			return ErrOutOfOrder
		}
		if latest.Kind == KindDeletion && p.Instance().Kind != KindRestoration {
			return ErrDeleted
		}
	}
	h.entries = append(h.entries, p)
	return nil
}

// Latest returns the most recent payload, or false for an empty history.
func (h *History[P]) Latest() (P, bool) {
	if len(h.entries) == 0 {
		var zero P
		return zero, false
	}
	return h.entries[len(h.entries)-1], true
}

// Earliest returns the oldest payload, or false for an empty history.
func (h *History[P]) Earliest() (P, bool) {
	if len(h.entries) == 0 {
		var zero P
		return zero, false
	}
	return h.entries[0], true
}

// Len reports the number of entries.
func (h *History[P]) Len() int {
	return len(h.entries)
}

// IsDeleted reports whether the latest entry is a deletion. An empty
// history is never deleted.
func (h *History[P]) IsDeleted() bool {
	latest, ok := h.Latest()
	return ok && latest.Instance().Kind == KindDeletion
}

// All returns a copy of the entries in order.
func (h *History[P]) All() []P {
	return slices.Clone(h.entries)
}
