// Package config handles configuration management for shotlink.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and per-folder overrides.
package config
