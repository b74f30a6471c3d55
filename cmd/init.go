package cmd

import (
	"errors"

	"github.com/PolarWolf314/punga/internal/ui"
	"github.com/PolarWolf314/punga/internal/workflows"
	"github.com/PolarWolf314/punga/secrets"

	"github.com/spf13/cobra"
)

var initDir string

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", "", "repository root to bind (defaults to the nearest bound ancestor, then the working directory)")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initDir = ""
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Binds this repository to a secrets directory and creates it",
	Long: `Binds the repository to a secrets directory outside the repository and
creates that directory.

The first run generates a random identifier, writes it to ` + secrets.IDFileName + ` at
the repository root, and creates the matching secrets directory. Running init
again is a no-op: the identifier is never regenerated and existing secret
files are never touched.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initialising Pūnga...", verbose)
		defer cleanup()

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			Dir:     initDir,
			Verbose: verbose,
		})
		if err != nil {
			if errors.Is(err, secrets.ErrMalformedIdentifier) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " The " + ui.Path.Sprint(secrets.IDFileName) + " file is malformed\n" +
					ui.Info.Sprint("→") + " Fix or remove it, then run " + ui.Code.Sprint("punga init") + " again"
				return err
			}
			return Logger.ErrorfAndReturn("failed to initialise: %v", err)
		}

		Logger.Debugf("Repository bound to identifier %s", result.ID)

		var finalMessage string
		if result.IDCreated {
			finalMessage = ui.Success.Sprint("✓") + " Pūnga initialised successfully!\n" +
				ui.Info.Sprint("→") + " Identifier written to " + ui.Path.Sprint(result.IDFilePath) + " — commit this file\n" +
				ui.Info.Sprint("→") + " Secrets directory: " + ui.Path.Sprint(result.SecretsPath) + "\n" +
				ui.Info.Sprint("→") + " Put secret files there; they stay outside the repository"
		} else {
			finalMessage = ui.Success.Sprint("✓") + " Pūnga already initialised\n" +
				ui.Info.Sprint("→") + " Secrets directory: " + ui.Path.Sprint(result.SecretsPath)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
