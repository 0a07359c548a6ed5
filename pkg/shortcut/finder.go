package shortcut

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/types"
)

// finderAliasCreator makes Finder aliases through osascript. Finder
// drops the alias into the shortcut's directory under a name of its
// own choosing, so the script renames the result to the requested
// name in the same breath.
type finderAliasCreator struct {
	fs     types.FS
	runner Runner
}

func (c *finderAliasCreator) Kind() string { return "finder-alias" }

func (c *finderAliasCreator) Suffix() string { return "" }

func (c *finderAliasCreator) Create(sourcePath, shortcutPath string) error {
	if err := checkSource(c.fs, sourcePath); err != nil {
		return err
	}

	script := buildAliasScript(sourcePath, shortcutPath)
	if out, err := c.runner.Run("osascript", "-e", script); err != nil {
		return errors.Wrapf(err, errors.ErrShortcutTool, "osascript failed creating alias %s", shortcutPath).
			WithDetail("script", script).
			WithDetail("output", strings.TrimSpace(string(out)))
	}

	log.Trace().
		Str("source", sourcePath).
		Str("shortcut", shortcutPath).
		Msg("Finder alias created")

	return nil
}

// buildAliasScript renders the AppleScript that asks Finder for an
// alias in the shortcut's directory carrying the shortcut's name.
func buildAliasScript(sourcePath, shortcutPath string) string {
	dir := filepath.Dir(shortcutPath)
	name := filepath.Base(shortcutPath)

	return fmt.Sprintf(`tell application "Finder"
	make alias file to POSIX file "%s" at POSIX file "%s"
	set name of result to "%s"
end tell`,
		escapeAppleScript(sourcePath),
		escapeAppleScript(dir),
		escapeAppleScript(name))
}

// escapeAppleScript escapes a value for use inside an AppleScript
// double-quoted string literal.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
