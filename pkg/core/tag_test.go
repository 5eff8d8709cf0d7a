package core

import (
	"errors"
	"testing"
)

func TestTagLifecycle(t *testing.T) {
	tag := NewTag("vacation", LevelMinor, testClock())

	value, err := tag.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "vacation" {
		t.Errorf("value = %q", value)
	}

	snap, _ := tag.Latest()
	if snap.Meta.Kind != KindCreation || snap.Meta.Version != (Version{0, 1, 0}) {
		t.Errorf("creation snapshot = %+v", snap.Meta)
	}

	renamed, err := tag.Set("holiday", "renamed", LevelMinor)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if renamed.Value != "holiday" || renamed.Meta.Version != (Version{0, 2, 0}) {
		t.Errorf("renamed snapshot = %+v", renamed)
	}

	if _, err := tag.Delete(""); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !tag.IsDeleted() {
		t.Error("tag should be deleted")
	}

	// The deleted snapshot still carries the last value.
	value, err = tag.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "holiday" {
		t.Errorf("value after delete = %q", value)
	}

	if _, err := tag.Set("zombie", "", LevelPatch); !errors.Is(err, ErrDeleted) {
		t.Errorf("expected ErrDeleted, got %v", err)
	}

	res, err := tag.Restore("")
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if res.Meta.Kind != KindRestoration {
		t.Errorf("restore kind = %v", res.Meta.Kind)
	}
	if tag.IsDeleted() {
		t.Error("tag still deleted after restore")
	}

	if tag.History().Len() != 4 {
		t.Errorf("history len = %d, want 4", tag.History().Len())
	}
}
