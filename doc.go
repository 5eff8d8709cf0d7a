// Package stratum is the Composition Root for the Stratum library.
//
// It connects the core versioning logic (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Stratum is an append-only version vault for files. Every change to an
// artifact is a new layer: content is published under a sortable, file-safe
// token combining a microsecond timestamp with a semantic version, and the
// full lifecycle (creation, updates, deletion, restoration) stays on disk.
// Nothing is ever overwritten or erased.
//
// Features:
//
//   - **Append-Only Histories**: deletions and restorations are events, not removals.
//   - **Semantic Versions**: every snapshot derives its version from the previous one.
//   - **Sortable Tokens**: file names order chronologically as plain strings.
//   - **Default Adapter (FS)**: atomic writes to the local filesystem with YAML manifests.
//   - **Watchable**: external changes surface as lifecycle events via fsnotify.
//   - **Extensible**: other backends plug in via `core.Store`.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := stratum.New("./vault",
//		stratum.WithAutoInit(true),
//		stratum.WithLogger(logger),
//	)
//
//	// Create an artifact
//	art, err := svc.CreateArtifact(ctx, "media", "md", core.FileTypeMarkdownNote, core.LevelMinor, content)
package stratum
