package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewArtifact(t *testing.T) {
	a, err := NewArtifact("media/images", "png", FileTypeImage, LevelMinor, testClock())
	if err != nil {
		t.Fatalf("NewArtifact failed: %v", err)
	}

	if a.ID == uuid.Nil {
		t.Error("artifact id not assigned")
	}
	if a.History().Len() != 1 {
		t.Fatalf("history len = %d, want 1", a.History().Len())
	}

	snap, _ := a.Latest()
	if snap.Meta.Kind != KindCreation {
		t.Errorf("first snapshot kind = %v", snap.Meta.Kind)
	}
	if snap.Meta.Version != (Version{0, 1, 0}) {
		t.Errorf("first version = %v", snap.Meta.Version)
	}
	if !snap.FileName.Time.Equal(snap.Meta.Time) {
		t.Error("file name stamp differs from instance stamp")
	}
}

func TestNewArtifactFolderValidation(t *testing.T) {
	tests := []struct {
		name   string
		folder string
	}{
		{name: "Trailing Slash", folder: "media/"},
		{name: "Empty", folder: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArtifact(tt.folder, "png", FileTypeImage, LevelMinor, testClock())
			if !errors.Is(err, ErrInvalidFolder) {
				t.Errorf("expected ErrInvalidFolder, got %v", err)
			}
		})
	}
}

func TestArtifactLifecycle(t *testing.T) {
	a, err := NewArtifact("docs", "md", FileTypeMarkdownNote, LevelMinor, testClock())
	if err != nil {
		t.Fatalf("NewArtifact failed: %v", err)
	}

	edit, err := a.Edit("typo fix", LevelPatch)
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if edit.Meta.Version != (Version{0, 1, 1}) {
		t.Errorf("edit version = %v", edit.Meta.Version)
	}

	del, err := a.Delete("")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if del.Meta.Version != (Version{1, 0, 0}) {
		t.Errorf("deletion version = %v", del.Meta.Version)
	}
	if !a.IsDeleted() {
		t.Error("artifact should be deleted")
	}

	// Edits are locked out until restoration.
	if _, err := a.Edit("nope", LevelPatch); !errors.Is(err, ErrDeleted) {
		t.Errorf("expected ErrDeleted, got %v", err)
	}

	res, err := a.Restore("")
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if res.Meta.Version != (Version{2, 0, 0}) {
		t.Errorf("restoration version = %v", res.Meta.Version)
	}
	if a.IsDeleted() {
		t.Error("artifact still deleted after restore")
	}

	if a.History().Len() != 4 {
		t.Errorf("history len = %d, want 4", a.History().Len())
	}
}

func TestArtifactEmptyHistory(t *testing.T) {
	a, err := NewArtifactFromHistory(uuid.New(), "docs", "md", FileTypeMarkdownNote, nil, nil, testClock())
	if err != nil {
		t.Fatalf("NewArtifactFromHistory failed: %v", err)
	}

	if _, err := a.Edit("x", LevelPatch); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Edit: expected ErrEmptyHistory, got %v", err)
	}
	if _, err := a.Delete(""); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Delete: expected ErrEmptyHistory, got %v", err)
	}
	if _, err := a.Restore(""); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Restore: expected ErrEmptyHistory, got %v", err)
	}
	if _, err := a.Path(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Path: expected ErrEmptyHistory, got %v", err)
	}
}

func TestArtifactPath(t *testing.T) {
	a, err := NewArtifact("media/images", "png", FileTypeImage, LevelMinor, testClock())
	if err != nil {
		t.Fatalf("NewArtifact failed: %v", err)
	}

	path, err := a.Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if !strings.HasPrefix(path, "media/images/") || !strings.HasSuffix(path, "_0-1-0.png") {
		t.Errorf("unexpected path: %q", path)
	}
}

func TestArtifactExtensionNormalized(t *testing.T) {
	a, err := NewArtifact("docs", ".md", FileTypeMarkdownNote, LevelMinor, testClock())
	if err != nil {
		t.Fatalf("NewArtifact failed: %v", err)
	}
	if a.Extension != "md" {
		t.Errorf("extension = %q, want %q", a.Extension, "md")
	}
}

func TestAttachTag(t *testing.T) {
	a, err := NewArtifact("docs", "md", FileTypeMarkdownNote, LevelMinor, testClock())
	if err != nil {
		t.Fatalf("NewArtifact failed: %v", err)
	}

	tag := NewTag("holiday", LevelMinor, testClock())
	a.AttachTag(tag)
	a.AttachTag(tag) // duplicate ignored

	if len(a.Tags) != 1 {
		t.Errorf("tags len = %d, want 1", len(a.Tags))
	}
}
