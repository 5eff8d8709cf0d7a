package core

import (
	"fmt"
	"strings"
	"time"
)

// EventType represents the type of change observed in a vault.
type EventType string

const (
	EventCreate  EventType = "CREATE"
	EventModify  EventType = "MODIFY"
	EventDelete  EventType = "DELETE"
	EventRestore EventType = "RESTORE"
)

// Event represents one observed change, emitted by the service and by
// store watchers.
type Event struct {
	Type EventType
	ID   string
	Time time.Time
}

// String renders the event for logs and for the lifecycle event bridge.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}

// FileType classifies what an artifact's bytes represent. It is plain
// bookkeeping; the core never branches on it.
type FileType string

const (
	FileTypeImage        FileType = "image"
	FileTypeVideo        FileType = "video"
	FileTypeAudio        FileType = "audio"
	FileTypeBinary       FileType = "binary"
	FileTypeDocument     FileType = "document"
	FileTypeCodeFile     FileType = "code"
	FileTypeMarkdownNote FileType = "markdown"
	FileTypeArchive      FileType = "archive"
	FileTypeSpecialized  FileType = "specialized"
	FileTypeOther        FileType = "other"
)

// ParseFileType maps a textual name to a FileType. Unknown names map to
// FileTypeOther rather than failing; the classification is advisory.
func ParseFileType(s string) FileType {
	switch FileType(strings.ToLower(strings.TrimSpace(s))) {
	case FileTypeImage, FileTypeVideo, FileTypeAudio, FileTypeBinary,
		FileTypeDocument, FileTypeCodeFile, FileTypeMarkdownNote,
		FileTypeArchive, FileTypeSpecialized:
		return FileType(strings.ToLower(strings.TrimSpace(s)))
	}
	return FileTypeOther
}
