package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexitok/lexitok/internal/tokenizer"
)

func newImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a vocabulary from a JSON snapshot",
		Long: `Load a vocabulary previously produced by 'lexitok export --format json'
and save it under a name. The snapshot carries the vocabulary, the
special-token list, and the case-sensitivity flag; any size cap from the
original build is not part of a snapshot.

Example:
  lexitok import vocab.json --name imported`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			var snap tokenizer.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			tok := tokenizer.FromSnapshot(snap)

			root, err := findRoot()
			if err != nil {
				return err
			}
			store, closeDB, err := openStore(root)
			if err != nil {
				return err
			}
			defer closeDB()

			if _, err := store.Save(name, tok); err != nil {
				return err
			}

			fmt.Printf("Imported vocabulary %q: %d tokens\n", name, tok.Size())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")

	return cmd
}
