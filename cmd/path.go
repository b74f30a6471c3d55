package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/punga/internal/workflows"
	"github.com/PolarWolf314/punga/secrets"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Prints the secrets directory path for this repository",
	Long: `Resolves this repository's identifier to its secrets directory and prints
the path to stdout, without mutating anything.

Intended for shell integration:

  cp api_key.txt "$(punga path)"

Exits non-zero if the repository has not been initialised or the secrets
directory does not exist.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting path command")

		result, err := workflows.Path(cmd.Context())
		if errors.Is(err, secrets.ErrNotInitialized) {
			return Logger.ErrorfAndReturn("Pūnga has not been initialised for this repository: run `punga init` first")
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve secrets directory: %v", err)
		}

		Logger.Debugf("Resolved identifier %s", result.ID)
		fmt.Println(result.SecretsPath)
		return nil
	},
}
