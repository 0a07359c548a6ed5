package shotlink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Replace image files with shortcuts to their originals"
	MsgSyncShort       = "Replace files in TARGET with shortcuts to originals in REFERENCE"
	MsgListShort       = "List the original each base name resolves to"
	MsgListLong        = "List walks REFERENCE and shows, for every base name, the file the configured extension priority selects."
	MsgGenConfigShort  = "Output the default configuration"
	MsgGenConfigLong   = "Gen-config prints the default configuration with every value commented out. With --write it is saved to the user config path, unless a config already exists there."
	MsgDocsShort       = "Display bundled documentation"
	MsgDocsLong        = "Docs renders the bundled documentation topics. Without arguments it lists the available topics."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNothingMatched = "Nothing to do: no file in the target matches an original."
	MsgConfigWritten  = "Written config file to %s\n"
	MsgConfigExists   = "Config file already exists at %s, not overwriting\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrEntriesFailed = "%d of %d entries failed"
	MsgErrUnknownTopic  = "unknown topic: %s"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview changes without executing them"
	MsgFlagConfig   = "Config file to use instead of the default"
	MsgFlagPriority = "Extension priority, best first (e.g. NEF,TIF,JPG)"
	MsgFlagSidecars = "Read rating and label from sidecar files"
	MsgFlagWrite    = "Write the config to the user config path"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimSpace(msgSyncExampleRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimSpace(msgListExampleRaw)
)
