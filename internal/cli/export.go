package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexitok/lexitok/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		name   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a vocabulary as JSON, markdown, or TSV",
		Long: `Render a saved vocabulary. Output is written to stdout — pipe it to a file.

The json format is the interchange format: it can be fed back into
'lexitok import'.

Examples:
  lexitok export --format json > vocab.json
  lexitok export --name mybook --format markdown > VOCAB.md
  lexitok export --format tsv | column -t`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := findRoot()
			if err != nil {
				return err
			}
			store, closeDB, err := openStore(root)
			if err != nil {
				return err
			}
			defer closeDB()

			tok, err := store.Get(name)
			if err != nil {
				return err
			}

			exporter, ok := export.Get(strings.ToLower(format))
			if !ok {
				return fmt.Errorf("unknown format %q; valid formats: %s",
					format, strings.Join(export.ValidFormats(), ", "))
			}

			output, err := exporter.Export(export.ExportData{
				Name:     name,
				Snapshot: tok.Snapshot(),
			})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			_, err = os.Stdout.WriteString(output)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")
	cmd.Flags().StringVar(&format, "format", "json",
		"output format: json, markdown, tsv")

	return cmd
}
