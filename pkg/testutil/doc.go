// Package testutil provides utilities for testing shotlink components.
//
// Key components:
//   - file fixture helpers (CreateFile, CreateDir, FileExists) for
//     tests that exercise the real filesystem through t.TempDir
//   - MemFS: an afero-backed in-memory types.FS for fast, isolated tests
//   - FaultyFS: a wrapper that injects per-path errors to exercise
//     failure handling
//   - RecordingRunner / RecordingCreator: fakes for the external
//     command runner and the shortcut creator
//
// All test data should be defined inline, not in external files, and
// each test should be completely isolated with no shared state.
package testutil
