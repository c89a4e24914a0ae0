package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newForgetCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "forget",
		Short: "Delete a saved vocabulary",
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

			if err := store.Delete(name); err != nil {
				return err
			}
			fmt.Printf("Deleted vocabulary %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")

	return cmd
}
