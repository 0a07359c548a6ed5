package shortcut

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/types"
)

// shellLinkCreator makes Windows .lnk files through the WScript.Shell
// COM object, driven by PowerShell. CreateShortcut overwrites an
// existing link of the same name, which is what repeated runs rely on.
type shellLinkCreator struct {
	fs     types.FS
	runner Runner
}

func (c *shellLinkCreator) Kind() string { return "shell-link" }

func (c *shellLinkCreator) Suffix() string { return ".lnk" }

func (c *shellLinkCreator) Create(sourcePath, shortcutPath string) error {
	if err := checkSource(c.fs, sourcePath); err != nil {
		return err
	}

	script := buildShellLinkScript(sourcePath, shortcutPath)
	args := []string{"-NoProfile", "-NonInteractive", "-Command", script}
	if out, err := c.runner.Run("powershell", args...); err != nil {
		return errors.Wrapf(err, errors.ErrShortcutTool, "powershell failed creating link %s", shortcutPath).
			WithDetail("script", script).
			WithDetail("output", strings.TrimSpace(string(out)))
	}

	log.Trace().
		Str("source", sourcePath).
		Str("shortcut", shortcutPath).
		Msg("Shell link created")

	return nil
}

// buildShellLinkScript renders the PowerShell snippet that writes the
// .lnk file. The working directory is set to the source's folder, the
// same way Explorer fills it in.
func buildShellLinkScript(sourcePath, shortcutPath string) string {
	workingDir := filepath.Dir(sourcePath)

	return fmt.Sprintf(
		"$shell = New-Object -ComObject WScript.Shell; "+
			"$link = $shell.CreateShortcut('%s'); "+
			"$link.TargetPath = '%s'; "+
			"$link.WorkingDirectory = '%s'; "+
			"$link.Save()",
		escapePowerShell(shortcutPath),
		escapePowerShell(sourcePath),
		escapePowerShell(workingDir))
}

// escapePowerShell escapes a value for use inside a PowerShell
// single-quoted string literal, where only the quote itself needs
// doubling.
func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
