// Package topics provides a topic-based help system for Cobra CLI
// applications. Documents shipped inside the binary become help topics
// that sit alongside the regular per-command help, so the CLI stays
// self-documenting without installed files.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one renderable help document.
type Topic struct {
	Name    string
	Format  string
	Content string
}

// Manager holds the topics loaded from a filesystem, usually an
// embedded one.
type Manager struct {
	topics       map[string]*Topic
	renderer     Renderer
	originalHelp func(*cobra.Command, []string)
}

// Options configures topic loading.
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Defaults to ".md" and ".txt".
	Extensions []string

	// Renderer formats topic content for the terminal. Defaults to
	// PlainRenderer.
	Renderer Renderer
}

// Load reads every topic file under dir in fsys. The topic name is the
// file name without its extension.
func Load(fsys fs.FS, dir string, opts Options) (*Manager, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".md", ".txt"}
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = &PlainRenderer{}
	}

	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: renderer,
	}

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !slices.Contains(extensions, ext) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load help topics: %w", err)
	}

	return m, nil
}

// Get returns a topic by name. Flag-style names are accepted:
// "--priority" resolves to the "option-priority" document.
func (m *Manager) Get(name string) (*Topic, bool) {
	trimmed := strings.TrimPrefix(name, "--")
	trimmed = strings.TrimPrefix(trimmed, "-")

	if topic, ok := m.topics[trimmed]; ok {
		return topic, true
	}

	topic, ok := m.topics["option-"+trimmed]
	return topic, ok
}

// Names returns all topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns a topic's content formatted for the terminal.
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, topic.Format)
}

// Attach wires the manager into a root command: a help command that
// resolves topics as well as commands, and the same lookup behind the
// --help flag.
func (m *Manager) Attach(rootCmd *cobra.Command) {
	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				fmt.Print(m.TopicList(rootCmd.Name()))
				return
			}

			if topic, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(topic))
				return
			}

			m.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(topic))
				return
			}
		}
		m.originalHelp(cmd, args)
	})
}

// TopicList builds the "help topics" listing, with option topics shown
// in flag form.
func (m *Manager) TopicList(appName string) string {
	names := m.Names()
	if len(names) == 0 {
		return "No help topics available.\n"
	}

	var options []string
	var general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	b.WriteString("Available help topics:\n")
	if len(general) > 0 {
		b.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		b.WriteString("\nOption topics:\n")
		for _, name := range options {
			fmt.Fprintf(&b, "  --%s\n", name)
		}
	}
	fmt.Fprintf(&b, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
	return b.String()
}

// Initialize loads topics from fsys and attaches them to rootCmd.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, dir string, opts Options) error {
	m, err := Load(fsys, dir, opts)
	if err != nil {
		return err
	}
	m.Attach(rootCmd)
	return nil
}
