package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/granblue-tools/hensei-transfer/internal/converters/wiki"
	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
)

var wikiOutput string

var wikiCmd = &cobra.Command{
	Use:   "wiki [document]",
	Short: "Render a portable team document as gbf.wiki template markup",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWiki,
}

func init() {
	wikiCmd.Flags().StringVarP(&wikiOutput, "output", "o", "", "output file (default stdout)")
}

func runWiki(cmd *cobra.Command, args []string) error {
	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	doc, err := party.Parse(data)
	if err != nil {
		return err
	}

	markup, err := wiki.Render(doc)
	if err != nil {
		return err
	}

	return writeOutput(wikiOutput, []byte(markup+"\n"))
}
