package cmd

import (
	"errors"
	"os"

	"github.com/PolarWolf314/punga/internal/workflows"
	"github.com/PolarWolf314/punga/secrets"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <name>",
	Short: "Prints a secret file from the secrets directory",
	Long: `Reads a single secret file through the accessor and writes its raw bytes
to stdout.

The name is relative to the secrets directory and may include
subdirectories (for example service/api_key.txt). Names that would escape
the directory are rejected.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting read command for %s", name)

		data, err := workflows.ReadSecret(cmd.Context(), name)
		switch {
		case errors.Is(err, secrets.ErrNotInitialized):
			return Logger.ErrorfAndReturn("Pūnga has not been initialised for this repository: run `punga init` first")
		case errors.Is(err, secrets.ErrInvalidSecretPath):
			return Logger.ErrorfAndReturn("invalid secret name %q: names must stay within the secrets directory", name)
		case errors.Is(err, secrets.ErrSecretNotFound):
			return Logger.ErrorfAndReturn("secret %q has not been provisioned: add it with `cp %s \"$(punga path)/%s\"`", name, name, name)
		case err != nil:
			return Logger.ErrorfAndReturn("failed to read secret: %v", err)
		}

		_, err = os.Stdout.Write(data)
		return err
	},
}
