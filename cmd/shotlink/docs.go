package shotlink

import (
	"embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shotlink/shotlink/pkg/cobrax/topics"
)

//go:embed docs
var docsFS embed.FS

// loadTopics builds the topic manager over the embedded documentation.
func loadTopics() (*topics.Manager, error) {
	return topics.Load(docsFS, "docs", topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	})
}

func newDocsCmd(manager *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "docs [topic]",
		Short:   MsgDocsShort,
		Long:    MsgDocsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return manager.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Print(manager.TopicList(cmd.Root().Name()))
				return nil
			}

			topic, ok := manager.Get(args[0])
			if !ok {
				return fmt.Errorf(MsgErrUnknownTopic, args[0])
			}
			fmt.Print(manager.Render(topic))
			return nil
		},
	}
}
