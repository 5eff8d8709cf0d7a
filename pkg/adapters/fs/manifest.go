package fs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/stratum/pkg/core"
)

// Manifests are the persisted form of an entity's history. Artifact
// snapshots store only their token besides the instance fields; timestamp
// and version are recovered by decoding the token, which keeps the manifest
// and the on-disk file names from drifting apart.

type artifactManifest struct {
	ID        string           `yaml:"id"`
	Folder    string           `yaml:"folder"`
	Extension string           `yaml:"extension"`
	Type      string           `yaml:"type"`
	Tags      []string         `yaml:"tags,omitempty"`
	Snapshots []snapshotRecord `yaml:"snapshots"`
}

type snapshotRecord struct {
	ID    string `yaml:"id"`
	Token string `yaml:"token"`
	Kind  string `yaml:"kind"`
	Note  string `yaml:"note"`
}

type tagManifest struct {
	ID        string      `yaml:"id"`
	Snapshots []tagRecord `yaml:"snapshots"`
}

type tagRecord struct {
	ID      string    `yaml:"id"`
	Value   string    `yaml:"value"`
	Time    time.Time `yaml:"time"`
	Version string    `yaml:"version"`
	Kind    string    `yaml:"kind"`
	Note    string    `yaml:"note"`
}

func encodeArtifactManifest(a *core.Artifact) ([]byte, error) {
	m := artifactManifest{
		ID:        a.ID.String(),
		Folder:    a.Folder,
		Extension: a.Extension,
		Type:      string(a.Type),
	}
	for _, t := range a.Tags {
		m.Tags = append(m.Tags, t.ID.String())
	}
	for _, snap := range a.History().All() {
		m.Snapshots = append(m.Snapshots, snapshotRecord{
			ID:    snap.ID.String(),
			Token: snap.FileName.String(),
			Kind:  string(snap.Meta.Kind),
			Note:  snap.Meta.Note,
		})
	}
	return yaml.Marshal(m)
}

func (s *Store) decodeArtifact(ctx context.Context, data []byte) (*core.Artifact, error) {
	var m artifactManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse artifact manifest: %w", err)
	}

	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, fmt.Errorf("artifact manifest id: %w", err)
	}

	snapshots := make([]core.Snapshot, 0, len(m.Snapshots))
	for _, rec := range m.Snapshots {
		snapID, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("snapshot id in manifest %s: %w", m.ID, err)
		}
		fn, err := core.ParseFileName(rec.Token)
		if err != nil {
			return nil, fmt.Errorf("snapshot token in manifest %s: %w", m.ID, err)
		}
		snapshots = append(snapshots, core.Snapshot{
			ID:       snapID,
			FileName: fn,
			Meta: core.Instance{
				Time:    fn.Time,
				Note:    rec.Note,
				Kind:    core.Kind(rec.Kind),
				Version: fn.Version,
			},
		})
	}

	var tags []*core.Tag
	for _, raw := range m.Tags {
		tagID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("tag id in manifest %s: %w", m.ID, err)
		}
		t, err := s.LoadTag(ctx, tagID)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return core.NewArtifactFromHistory(id, m.Folder, m.Extension, core.ParseFileType(m.Type), snapshots, tags, s.config.Clock)
}

func encodeTagManifest(t *core.Tag) ([]byte, error) {
	m := tagManifest{ID: t.ID.String()}
	for _, snap := range t.History().All() {
		m.Snapshots = append(m.Snapshots, tagRecord{
			ID:      snap.ID.String(),
			Value:   snap.Value,
			Time:    snap.Meta.Time,
			Version: snap.Meta.Version.String(),
			Kind:    string(snap.Meta.Kind),
			Note:    snap.Meta.Note,
		})
	}
	return yaml.Marshal(m)
}

func decodeTagManifest(data []byte, clock core.Clock) (*core.Tag, error) {
	var m tagManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse tag manifest: %w", err)
	}

	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, fmt.Errorf("tag manifest id: %w", err)
	}

	snapshots := make([]core.TagSnapshot, 0, len(m.Snapshots))
	for _, rec := range m.Snapshots {
		snapID, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("snapshot id in manifest %s: %w", m.ID, err)
		}
		version, err := core.ParseVersion(rec.Version)
		if err != nil {
			return nil, fmt.Errorf("snapshot version in manifest %s: %w", m.ID, err)
		}
		snapshots = append(snapshots, core.TagSnapshot{
			ID:    snapID,
			Value: rec.Value,
			Meta: core.Instance{
				Time:    rec.Time,
				Note:    rec.Note,
				Kind:    core.Kind(rec.Kind),
				Version: version,
			},
		})
	}

	return core.NewTagFromHistory(id, snapshots, clock), nil
}
