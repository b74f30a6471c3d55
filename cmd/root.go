package cmd

import (
	"fmt"

	logger "github.com/PolarWolf314/punga/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// RootCmd is the top-level punga command.
	RootCmd = &cobra.Command{
		Use:   "punga",
		Short: "Pūnga - keep development secrets outside your repository.",
		Long: `Pūnga binds a repository to a private secrets directory on your machine,
so API keys and tokens are never committed.

A single identifier file (.punga_id) is checked into the repository. It maps
to a directory outside the repository where the actual secret files live.
Library code resolves the identifier at runtime and reads secrets from that
directory; the files themselves never enter version control.

Usage:
  punga <command> [flags]

Available Commands:
  init     Bind this repository to a secrets directory and create it
  path     Print the secrets directory path for this repository
  read     Print a secret file from the secrets directory
  log      View the audit log of binding operations
  embed    Generate Go source embedding the repository's identifier

Run 'punga help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing punga command with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("Punga", "alligator2", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Welcome to Pūnga! Run 'punga --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(pathCmd)
	RootCmd.AddCommand(readCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(embedCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetInitCommandState()
	resetLogCommandState()
	resetEmbedCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
