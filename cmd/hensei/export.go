package main

import (
	"github.com/spf13/cobra"

	"github.com/granblue-tools/hensei-transfer/internal/converters/export"
	"github.com/granblue-tools/hensei-transfer/internal/converters/wiki"
	"github.com/granblue-tools/hensei-transfer/internal/entities/gbf"
)

var (
	exportOutput string
	exportWiki   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [snapshot]",
	Short: "Convert a captured game-state snapshot into a portable team document",
	Long: `Export reads a game-state snapshot (a JSON capture of the in-game deck
editor state) and writes the portable team document. With --wiki the wiki
markup is written directly instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportWiki, "wiki", false, "emit wiki markup instead of the document")
}

func runExport(cmd *cobra.Command, args []string) error {
	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	snap, err := gbf.LoadSnapshot(in)
	if err != nil {
		return err
	}

	doc, err := export.Convert(snap)
	if err != nil {
		return err
	}

	if exportWiki {
		markup, err := wiki.Render(doc)
		if err != nil {
			return err
		}
		return writeOutput(exportOutput, []byte(markup+"\n"))
	}

	data, err := doc.Encode()
	if err != nil {
		return err
	}
	return writeOutput(exportOutput, append(data, '\n'))
}
