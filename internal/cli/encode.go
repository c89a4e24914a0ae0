package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexitok/lexitok/internal/tokenizer"
)

func newEncodeCmd() *cobra.Command {
	var (
		name     string
		useStdin bool
	)

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text into an id sequence",
		Long: `Tokenize text and map each token to its id in a saved vocabulary.
Out-of-vocabulary tokens map to the unknown token's id; the sequence is
wrapped with the sequence-start and sequence-end ids.

Examples:
  lexitok encode "hello world"
  lexitok encode --name mybook "call me ishmael"
  cat input.txt | lexitok encode --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, useStdin)
			if err != nil {
				return err
			}

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

			ids, err := tok.Encode(text)
			if errors.Is(err, tokenizer.ErrSpecialMissing) {
				return fmt.Errorf("vocabulary %q is missing a required special token (%v) — rebuild it or re-import a complete snapshot", name, err)
			}
			if err != nil {
				return err
			}

			out := make([]string, len(ids))
			for i, id := range ids {
				out[i] = fmt.Sprint(id)
			}
			fmt.Println(strings.Join(out, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "read input from stdin")

	return cmd
}
