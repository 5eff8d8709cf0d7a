package core

import "time"

// Kind tags the lifecycle event an instance records.
type Kind string

const (
	KindCreation    Kind = "CREATION"
	KindUpdate      Kind = "UPDATE"
	KindDeletion    Kind = "DELETION"
	KindRestoration Kind = "RESTORATION"
)

// Default change narratives for events the caller did not annotate.
const (
	noteCreated  = "Instance Created"
	noteDeleted  = "Instance Deleted"
	noteRestored = "Instance restored"
)

// Instance is the immutable record of one lifecycle event: a timestamp, a
// change narrative, an event kind and a derived version. Instances are never
// mutated or deleted, only appended to a history.
//
// Every transition bumps the version, deletion and restoration at major
// granularity, so the version alone is a total order over the event history
// independent of the timestamp.
type Instance struct {
	Time    time.Time
	Note    string
	Kind    Kind
	Version Version
}

// NewInstance creates the very first instance of a fresh history.
// Its version is 0.0.0 bumped at the given level.
func NewInstance(level Level, clock Clock) Instance {
	return Instance{
		Time:    stamp(clock),
		Note:    noteCreated,
		Kind:    KindCreation,
		Version: Version{}.Next(level),
	}
}

// Child derives an update instance from the receiver. The parent is
// untouched.
func (i Instance) Child(note string, level Level, clock Clock) Instance {
	return Instance{
		Time:    stamp(clock),
		Note:    note,
		Kind:    KindUpdate,
		Version: i.Version.Next(level),
	}
}

// Deletion derives a deletion instance from the receiver. An empty note
// falls back to the default narrative.
func (i Instance) Deletion(note string, clock Clock) Instance {
	if note == "" {
		note = noteDeleted
	}
	return Instance{
		Time:    stamp(clock),
		Note:    note,
		Kind:    KindDeletion,
		Version: i.Version.Next(LevelMajor),
	}
}

// Restoration derives a restoration instance from the receiver, the only
// transition accepted after a deletion.
func (i Instance) Restoration(note string, clock Clock) Instance {
	if note == "" {
		note = noteRestored
	}
	return Instance{
		Time:    stamp(clock),
		Note:    note,
		Kind:    KindRestoration,
		Version: i.Version.Next(LevelMajor),
	}
}

func stamp(clock Clock) time.Time {
	if clock == nil {
		clock = SystemClock
	}
	return clock.Now()
}
