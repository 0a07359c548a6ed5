// Package types defines the shared interfaces used across shotlink packages.
//
// The FS interface abstracts the filesystem so the indexer and synchronizer
// can run against the real OS filesystem in production and an in-memory
// filesystem in tests.
package types
