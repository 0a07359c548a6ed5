// Package shotlink wires the command line interface: flag parsing,
// output rendering and the mapping from arguments to the command
// implementations under pkg/commands.
package shotlink

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shotlink/shotlink/internal/version"
	"github.com/shotlink/shotlink/pkg/commands/genconfig"
	"github.com/shotlink/shotlink/pkg/commands/list"
	cmdsync "github.com/shotlink/shotlink/pkg/commands/sync"
	"github.com/shotlink/shotlink/pkg/display"
	"github.com/shotlink/shotlink/pkg/logging"
	"github.com/shotlink/shotlink/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		dryRun     bool
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "shotlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but exit non-zero.
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	// The topic system installs its own help command
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help over the embedded docs
	if manager, err := loadTopics(); err == nil {
		rootCmd.AddCommand(newDocsCmd(manager))
		manager.Attach(rootCmd)
	}

	return rootCmd
}

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync TARGET REFERENCE",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Persistent flags live on the root command
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			configFile, _ := cmd.Root().PersistentFlags().GetString("config")
			priority, _ := cmd.Flags().GetStringSlice("priority")

			log.Info().
				Str("target", args[0]).
				Str("reference", args[1]).
				Bool("dry_run", dryRun).
				Msg("Syncing shortcut folder")

			result, err := cmdsync.Sync(cmdsync.SyncOptions{
				TargetRoot:    args[0],
				ReferenceRoot: args[1],
				Priority:      priority,
				ConfigFile:    configFile,
				DryRun:        dryRun,
			})
			if err != nil {
				return err
			}

			renderer := display.NewRenderer(ui.DetectFormat(os.Stdout))
			if len(result.Entries) == 0 {
				fmt.Println(MsgNothingMatched)
			}
			for _, entry := range result.Entries {
				fmt.Println(renderer.RenderMatch(entry))
			}
			fmt.Println(renderer.RenderSummary(result))

			if result.Err != nil {
				return fmt.Errorf(MsgErrEntriesFailed, result.FailedCount(), result.MatchedCount())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceP("priority", "p", nil, MsgFlagPriority)
	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list REFERENCE",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Root().PersistentFlags().GetString("config")
			priority, _ := cmd.Flags().GetStringSlice("priority")
			sidecars, _ := cmd.Flags().GetBool("sidecars")

			log.Info().Str("reference", args[0]).Msg("Listing originals")

			result, err := list.List(list.ListOptions{
				ReferenceRoot: args[0],
				Priority:      priority,
				ConfigFile:    configFile,
				Sidecars:      sidecars,
			})
			if err != nil {
				return err
			}

			rows := make([]display.ListRow, len(result.Items))
			for i, item := range result.Items {
				rows[i] = display.ListRow{
					Base:    item.Base,
					Path:    item.Path,
					Ext:     item.Ext,
					Rank:    item.Rank,
					Sidecar: item.Sidecar,
					Rating:  item.Rating,
					Label:   item.Label,
				}
			}

			renderer := display.NewRenderer(ui.DetectFormat(os.Stdout))
			fmt.Println(renderer.RenderList(result.ReferenceRoot, rows))
			return nil
		},
	}

	cmd.Flags().StringSliceP("priority", "p", nil, MsgFlagPriority)
	cmd.Flags().Bool("sidecars", false, MsgFlagSidecars)
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{Write: write})
			if err != nil {
				return err
			}

			if !write {
				fmt.Print(result.ConfigContent)
				return nil
			}
			if result.Written {
				fmt.Printf(MsgConfigWritten, result.FilePath)
			} else {
				fmt.Printf(MsgConfigExists, result.FilePath)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shotlink version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
