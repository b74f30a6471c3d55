package cmd

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/punga/secrets"

	"github.com/spf13/cobra"
)

var (
	embedDir     string
	embedPackage string
	embedOut     string
	embedVar     string
)

func init() {
	embedCmd.Flags().StringVar(&embedDir, "dir", "", "repository root holding the identifier file (defaults to the nearest bound ancestor)")
	embedCmd.Flags().StringVar(&embedPackage, "package", "main", "package name for the generated file")
	embedCmd.Flags().StringVar(&embedOut, "out", "punga_id_gen.go", "output file, relative to the working directory")
	embedCmd.Flags().StringVar(&embedVar, "var", "pungaID", "variable name for the embedded identifier")
}

// resetEmbedCommandState resets the embed command's global state for testing.
func resetEmbedCommandState() {
	embedDir = ""
	embedPackage = "main"
	embedOut = "punga_id_gen.go"
	embedVar = "pungaID"
}

const embedTemplate = `// Code generated by "punga embed"; DO NOT EDIT.

package %s

import "github.com/PolarWolf314/punga/secrets"

// %s is the secrets identifier this repository was bound to when the
// build ran. It is immutable for the lifetime of the program.
var %s = secrets.MustParseID(%q)
`

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Generates Go source embedding the repository's identifier",
	Long: `Reads and validates the repository's identifier file and writes a Go
source file declaring the bound identifier as a package variable.

Intended to run under go:generate:

  //go:generate punga embed --package main --out punga_id_gen.go --var pungaID

A missing or malformed identifier file makes the command exit non-zero,
which halts the generate step — a program is never built without a valid
bound identifier. The generated value is read-only at runtime; nothing
re-reads the identifier file after the build.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting embed command")

		if !token.IsIdentifier(embedVar) {
			return Logger.ErrorfAndReturn("%q is not a valid Go identifier", embedVar)
		}
		if !token.IsIdentifier(embedPackage) {
			return Logger.ErrorfAndReturn("%q is not a valid Go package name", embedPackage)
		}

		repoRoot := embedDir
		if repoRoot == "" {
			found, err := secrets.FindRepoRoot()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to locate repository root: %v", err)
			}
			repoRoot = found
		}
		if repoRoot == "" {
			return Logger.ErrorfAndReturn("no %s file found: run `punga init` before building", secrets.IDFileName)
		}

		idPath := filepath.Join(repoRoot, secrets.IDFileName)
		id, err := secrets.ReadIDFile(idPath)
		if errors.Is(err, fs.ErrNotExist) {
			return Logger.ErrorfAndReturn("identifier file %s does not exist: run `punga init` before building", idPath)
		}
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		source := fmt.Sprintf(embedTemplate, embedPackage, embedVar, embedVar, id.String())
		if err := os.WriteFile(embedOut, []byte(source), 0o644); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %v", embedOut, err)
		}

		Logger.Infof("Embedded identifier %s into %s", id, embedOut)
		return nil
	},
}
