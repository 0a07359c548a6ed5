package config

// Config is the root configuration structure for shotlink.
// It is assembled by Load from embedded defaults, the user
// configuration file, and SHOTLINK_* environment variables.
type Config struct {
	Sync SyncConfig `koanf:"sync"`
}

// SyncConfig holds the knobs that drive shortcut replacement.
type SyncConfig struct {
	// Priority is the extension preference list, best first.
	// Matching is case-insensitive and entries carry no leading dot.
	Priority []string `koanf:"priority"`

	// Reserved lists file names that are metadata rather than
	// shortcut entries and are skipped during a sync.
	Reserved []string `koanf:"reserved"`

	Sidecar SidecarConfig `koanf:"sidecar"`
}

// SidecarConfig describes which originals carry a sidecar file and
// what extension that sidecar uses.
type SidecarConfig struct {
	// Extension of the sidecar file, without a leading dot.
	Extension string `koanf:"extension"`

	// Sources lists the original extensions whose selection pulls
	// the sidecar along.
	Sources []string `koanf:"sources"`
}
