// Package main is the hensei-transfer command line tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/granblue-tools/hensei-transfer/internal/version"
)

var skipVersionCheck bool

var rootCmd = &cobra.Command{
	Use:   "hensei",
	Short: "Move Granblue Fantasy team setups between the game, granblue.team, and the wiki",
	Long: `hensei converts captured Granblue Fantasy team state into a portable
document, recreates teams on granblue.team, and renders gbf.wiki markup.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if skipVersionCheck {
			return
		}
		checker := &version.Checker{}
		if checker.Outdated(cmd.Context()) {
			fmt.Fprintln(os.Stderr,
				"warning: a newer release is available; conversions may not match current game data")
		}
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&skipVersionCheck, "skip-version-check", false,
		"skip the advisory release freshness check")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(wikiCmd)
}

// openInput returns the named file, or stdin for "" and "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// writeOutput writes data to the named file, or stdout for "" and "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
