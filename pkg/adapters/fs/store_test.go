package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stratum/pkg/core"
)

type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func testClock() core.Clock {
	return &stepClock{
		t:    time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC),
		step: time.Second,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(Config{Path: t.TempDir(), Clock: testClock()})
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

func TestStoreInitialize(t *testing.T) {
	t.Run("AutoInit Creates Vault And System Dirs", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "vault")
		store := NewStore(Config{Path: root, AutoInit: true})

		require.NoError(t, store.Initialize(context.Background()))

		for _, sub := range []string{"artifacts", "tags"} {
			info, err := os.Stat(filepath.Join(root, DefaultSystemDir, sub))
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		}
	})

	t.Run("Without AutoInit Missing Vault Is Not Created", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "vault")
		store := NewStore(Config{Path: root})

		require.Error(t, store.Initialize(context.Background()))

		_, err := os.Stat(root)
		assert.True(t, os.IsNotExist(err), "vault root must not be created")
	})

	t.Run("Existing Vault Opens Without AutoInit", func(t *testing.T) {
		root := t.TempDir()
		store := NewStore(Config{Path: root})

		require.NoError(t, store.Initialize(context.Background()))

		_, err := os.Stat(filepath.Join(root, DefaultSystemDir, "artifacts"))
		assert.NoError(t, err)
	})

	t.Run("MustExist Fails For Missing Dir", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "missing")
		store := NewStore(Config{Path: root, MustExist: true})

		assert.Error(t, store.Initialize(context.Background()))
	})
}

func TestSnapshotWriteRead(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	a, err := core.NewArtifact("media/images", "png", core.FileTypeImage, core.LevelMinor, store.config.Clock)
	require.NoError(t, err)
	snap, _ := a.Latest()

	require.NoError(t, store.WriteSnapshot(ctx, a, snap, []byte{0x89, 0x50}))

	content, err := store.ReadSnapshot(ctx, a, snap)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, content)

	// The on-disk name is the token.
	path, err := a.Path()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(store.Path, filepath.FromSlash(path)))
	assert.NoError(t, err)
}

func TestReadSnapshotMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	a, err := core.NewArtifact("docs", "md", core.FileTypeMarkdownNote, core.LevelMinor, store.config.Clock)
	require.NoError(t, err)
	snap, _ := a.Latest()

	_, err = store.ReadSnapshot(ctx, a, snap)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestArtifactManifestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	clock := store.config.Clock

	a, err := core.NewArtifact("docs", "md", core.FileTypeMarkdownNote, core.LevelMinor, clock)
	require.NoError(t, err)
	_, err = a.Edit("typo fix", core.LevelPatch)
	require.NoError(t, err)
	_, err = a.Delete("")
	require.NoError(t, err)
	_, err = a.Restore("")
	require.NoError(t, err)

	require.NoError(t, store.SaveArtifact(ctx, a))

	loaded, err := store.LoadArtifact(ctx, a.ID)
	require.NoError(t, err)

	assert.Equal(t, a.ID, loaded.ID)
	assert.Equal(t, "docs", loaded.Folder)
	assert.Equal(t, "md", loaded.Extension)
	assert.Equal(t, core.FileTypeMarkdownNote, loaded.Type)
	require.Equal(t, 4, loaded.History().Len())

	want := a.History().All()
	got := loaded.History().All()
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Meta.Kind, got[i].Meta.Kind)
		assert.Equal(t, want[i].Meta.Note, got[i].Meta.Note)
		assert.Equal(t, want[i].Meta.Version, got[i].Meta.Version)
		assert.True(t, want[i].Meta.Time.Equal(got[i].Meta.Time),
			"time mismatch at %d: %v vs %v", i, want[i].Meta.Time, got[i].Meta.Time)
	}

	assert.False(t, loaded.IsDeleted())
}

func TestArtifactManifestWithTags(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	clock := store.config.Clock

	tag := core.NewTag("vacation", core.LevelMinor, clock)
	require.NoError(t, store.SaveTag(ctx, tag))

	a, err := core.NewArtifact("media", "jpg", core.FileTypeImage, core.LevelMinor, clock)
	require.NoError(t, err)
	a.AttachTag(tag)
	require.NoError(t, store.SaveArtifact(ctx, a))

	loaded, err := store.LoadArtifact(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Tags, 1)
	assert.Equal(t, tag.ID, loaded.Tags[0].ID)

	value, err := loaded.Tags[0].Value()
	require.NoError(t, err)
	assert.Equal(t, "vacation", value)
}

func TestTagManifestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tag := core.NewTag("vacation", core.LevelMinor, store.config.Clock)
	_, err := tag.Set("holiday", "renamed", core.LevelMinor)
	require.NoError(t, err)

	require.NoError(t, store.SaveTag(ctx, tag))

	loaded, err := store.LoadTag(ctx, tag.ID)
	require.NoError(t, err)

	assert.Equal(t, tag.ID, loaded.ID)
	require.Equal(t, 2, loaded.History().Len())

	value, err := loaded.Value()
	require.NoError(t, err)
	assert.Equal(t, "holiday", value)

	snap, _ := loaded.Latest()
	assert.Equal(t, core.Version{Major: 0, Minor: 2, Patch: 0}, snap.Meta.Version)
	assert.Equal(t, "renamed", snap.Meta.Note)
}

func TestLoadArtifactNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadArtifact(context.Background(), uuid.New())
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestListSkipsForeignFiles(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	a, err := core.NewArtifact("docs", "md", core.FileTypeMarkdownNote, core.LevelMinor, store.config.Clock)
	require.NoError(t, err)
	require.NoError(t, store.SaveArtifact(ctx, a))

	// A stray file in the manifests dir must not break listing.
	stray := filepath.Join(store.Path, DefaultSystemDir, "artifacts", "README.yaml")
	require.NoError(t, os.WriteFile(stray, []byte("not a manifest"), 0644))

	artifacts, err := store.ListArtifacts(ctx)
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)
}

// A manifest written with shuffled snapshots must come back ordered: the
// history sorts on construction.
func TestManifestUnorderedSnapshotsSorted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	manifest := `id: 6f1f64a5-6c3f-4c74-9a1b-09c37c3f2a11
folder: docs
extension: md
type: markdown
snapshots:
  - id: 0a1a9b3e-5b58-4df8-8e2c-5a8f6f0a2b01
    token: 2024-07-30-00-00-02-000000-PLUS-0000_0-1-1
    kind: UPDATE
    note: second
  - id: 8c3b2f6d-1f04-47ad-9f5e-2f6f8e0c4d02
    token: 2024-07-30-00-00-01-000000-PLUS-0000_0-1-0
    kind: CREATION
    note: first
`
	path := filepath.Join(store.Path, DefaultSystemDir, "artifacts", "6f1f64a5-6c3f-4c74-9a1b-09c37c3f2a11.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	loaded, err := store.LoadArtifact(ctx, uuid.MustParse("6f1f64a5-6c3f-4c74-9a1b-09c37c3f2a11"))
	require.NoError(t, err)

	earliest, ok := loaded.History().Earliest()
	require.True(t, ok)
	assert.Equal(t, "first", earliest.Meta.Note)

	latest, ok := loaded.History().Latest()
	require.True(t, ok)
	assert.Equal(t, "second", latest.Meta.Note)
}

func TestListSnapshotTokens(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	a, err := core.NewArtifact("docs", "md", core.FileTypeMarkdownNote, core.LevelMinor, store.config.Clock)
	require.NoError(t, err)
	snap, _ := a.Latest()
	require.NoError(t, store.WriteSnapshot(ctx, a, snap, []byte("one")))

	edit, err := a.Edit("more", core.LevelPatch)
	require.NoError(t, err)
	require.NoError(t, store.WriteSnapshot(ctx, a, edit, []byte("two")))

	tokens, err := store.ListSnapshotTokens(a)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.True(t, sort.StringsAreSorted(tokens), "tokens must sort chronologically: %v", tokens)
}

func TestDebouncerCoalesces(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)

	fired := make(chan core.Event, 10)
	for i := 0; i < 5; i++ {
		d.add(core.Event{Type: core.EventModify, ID: "same"}, func(e core.Event) {
			fired <- e
		})
	}

	d.stopAndWait(time.Second)
	close(fired)

	var count int
	for range fired {
		count++
	}
	assert.Equal(t, 1, count, "burst must coalesce into one event")
}
