package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stratum/pkg/core"
)

// Exercises the full wiring: platform factory, fs store, domain service.
func TestVaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc, err := New(dir, WithAutoInit(true))
	require.NoError(t, err)

	art, err := svc.CreateArtifact(ctx, "media", "md", core.FileTypeMarkdownNote, core.LevelMinor, []byte("# first layer"))
	require.NoError(t, err)

	_, err = svc.EditArtifact(ctx, art.ID, []byte("# second layer"), "expand notes", core.LevelPatch)
	require.NoError(t, err)

	// Reopen the vault from disk with a fresh service.
	reopened, err := New(dir, WithMustExist(true))
	require.NoError(t, err)

	loaded, err := reopened.GetArtifact(art.ID)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.History().Len())

	latest, ok := loaded.Latest()
	require.True(t, ok)
	assert.Equal(t, "expand notes", latest.Meta.Note)
	assert.Equal(t, core.Version{Major: 0, Minor: 1, Patch: 1}, latest.Meta.Version)

	content, err := reopened.ReadArtifact(ctx, art.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("# second layer"), content)
}
