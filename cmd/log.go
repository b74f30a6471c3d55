package cmd

import (
	"fmt"

	"github.com/PolarWolf314/punga/internal/audit"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	logLimit int
	logJSON  bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log of binding operations",
	Long: `Displays the audit log of Pūnga operations across all repositories bound
on this machine.

Shows which repositories were initialised and when their secrets
directories were resolved or read.

Examples:
  punga log           # View full log
  punga log -n 10     # Last 10 entries
  punga log --json    # JSON output`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		entries, err := audit.ReadEntries()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %v", err)
		}

		if logLimit > 0 && len(entries) > logLimit {
			entries = entries[len(entries)-logLimit:]
		}

		if len(entries) == 0 {
			fmt.Println("No audit log entries found.")
			return nil
		}

		if logJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal entries to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, e := range entries {
			detail := e.SecretsPath
			if e.SecretName != "" {
				detail = e.SecretName
			}
			fmt.Printf("%-27s  %-10s  %-36s  %s\n", e.Timestamp, e.Operation, e.ID, detail)
		}
		return nil
	},
}
