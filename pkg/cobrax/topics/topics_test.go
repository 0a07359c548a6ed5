package topics

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"docs/guide.md":           {Data: []byte("# Guide\n\nHow it works.\n")},
		"docs/platforms.txt":      {Data: []byte("macOS and Windows.\n")},
		"docs/option-priority.md": {Data: []byte("# Priority\n\nExtension order.\n")},
		"docs/ignored.json":       {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	m, err := Load(testFS(), "docs", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"guide", "option-priority", "platforms"}, m.Names())
}

func TestLoadCustomExtensions(t *testing.T) {
	m, err := Load(testFS(), "docs", Options{Extensions: []string{".md"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"guide", "option-priority"}, m.Names())
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(testFS(), "nope", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load help topics")
}

func TestGet(t *testing.T) {
	m, err := Load(testFS(), "docs", Options{})
	require.NoError(t, err)

	tests := []struct {
		name     string
		lookup   string
		expected string
		found    bool
	}{
		{"exact name", "guide", "guide", true},
		{"option topic by bare name", "priority", "option-priority", true},
		{"option topic by flag", "--priority", "option-priority", true},
		{"option topic by short flag", "-priority", "option-priority", true},
		{"unknown topic", "nonsense", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := m.Get(tt.lookup)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestRenderPlain(t *testing.T) {
	m, err := Load(testFS(), "docs", Options{})
	require.NoError(t, err)

	topic, ok := m.Get("platforms")
	require.True(t, ok)
	assert.Equal(t, "macOS and Windows.\n", m.Render(topic))
}

func TestGlamourRendererPassesNonMarkdownThrough(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	out := r.Render("# Guide\n\nHow it works.\n", ".md")
	assert.Contains(t, out, "Guide")
	assert.Contains(t, out, "How it works.")
}

func TestRenderTopicList(t *testing.T) {
	m, err := Load(testFS(), "docs", Options{})
	require.NoError(t, err)

	out := m.TopicList("app")
	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "  guide\n")
	assert.Contains(t, out, "  platforms\n")
	assert.Contains(t, out, "Option topics:")
	assert.Contains(t, out, "  --priority\n")
	assert.Contains(t, out, "'app help <topic>'")
}

func TestAttachReplacesHelpCommand(t *testing.T) {
	rootCmd := &cobra.Command{Use: "app"}
	rootCmd.AddCommand(&cobra.Command{Use: "other"})

	require.NoError(t, Initialize(rootCmd, testFS(), "docs", Options{}))

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.NotNil(t, helpCmd.Run)
}
