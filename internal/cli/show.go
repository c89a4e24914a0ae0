package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var (
		name    string
		token   string
		id      int
		history bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a saved vocabulary, or look up a single token/id",
		Long: `Print a vocabulary summary, or resolve a single lookup.

Examples:
  lexitok show
  lexitok show --name mybook --token hello
  lexitok show --id 4
  lexitok show --history`,
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

			switch {
			case token != "":
				tid, ok := tok.TokenID(token)
				if !ok {
					return fmt.Errorf("token %q is not in vocabulary %q", token, name)
				}
				fmt.Println(tid)
				return nil

			case cmd.Flags().Changed("id"):
				t, ok := tok.Token(id)
				if !ok {
					return fmt.Errorf("id %d is not in vocabulary %q", id, name)
				}
				fmt.Println(t)
				return nil

			case history:
				builds, err := store.ListBuilds(name)
				if err != nil {
					return err
				}
				if len(builds) == 0 {
					fmt.Println("No builds recorded.")
					return nil
				}
				for _, b := range builds {
					line := fmt.Sprintf("%s  %-14s %d text(s), %d tokens",
						b.CreatedAt.Format("2006-01-02 15:04"), b.Source, b.TextCount, b.TokenCount)
					if b.Truncated {
						line += " (truncated)"
					}
					fmt.Println(line)
				}
				return nil
			}

			specials := tok.SpecialTokens()
			fmt.Printf("\nVocabulary: %s\n", name)
			fmt.Printf("Tokens:     %d (%d special)\n", tok.Size(), len(specials))
			fmt.Printf("Specials:   %s\n", strings.Join(specials, " "))
			fmt.Printf("Case:       %s\n", caseLabel(tok.CaseSensitive()))

			// A short id-ordered sample of the non-special entries.
			const sample = 10
			shown := 0
			for i := len(specials); shown < sample && i < tok.Size(); i++ {
				if t, ok := tok.Token(i); ok {
					fmt.Printf("  %4d  %s\n", i, t)
					shown++
				}
			}
			if tok.Size()-len(specials) > sample {
				fmt.Printf("  ... %d more (use `lexitok export` for the full table)\n",
					tok.Size()-len(specials)-sample)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")
	cmd.Flags().StringVarP(&token, "token", "t", "", "print the id of this token")
	cmd.Flags().IntVarP(&id, "id", "i", 0, "print the token with this id")
	cmd.Flags().BoolVar(&history, "history", false, "print the build history")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved vocabularies",
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

			entries, err := store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No vocabularies yet. Run `lexitok build` first.")
				return nil
			}

			fmt.Printf("%-20s %8s  %-14s %s\n", "NAME", "TOKENS", "CASE", "UPDATED")
			for _, e := range entries {
				fmt.Printf("%-20s %8s  %-14s %s\n",
					e.Name, strconv.Itoa(e.Size), caseLabel(e.CaseSensitive),
					e.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func caseLabel(sensitive bool) string {
	if sensitive {
		return "sensitive"
	}
	return "insensitive"
}
