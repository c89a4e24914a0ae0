package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "decode <id>...",
		Short: "Decode an id sequence back into text",
		Long: `Map ids back to tokens in a saved vocabulary and join them into text.
Special tokens are filtered out; unknown ids are skipped.

Example:
  lexitok decode 2 4 5 6 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid id %q: %w", arg, err)
				}
				ids = append(ids, id)
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

			fmt.Println(tok.Decode(ids))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")

	return cmd
}
