package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexitok/lexitok/internal/config"
	"github.com/lexitok/lexitok/internal/estimate"
	"github.com/lexitok/lexitok/internal/tokenizer"
)

func newStatsCmd() *cobra.Command {
	var (
		name     string
		useStdin bool
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "stats [text]",
		Short: "Compare word-level tokenization against a reference BPE encoding",
		Long: `Tokenize text with a saved vocabulary and report how it compares to a
tiktoken encoding: sequence lengths and vocabulary coverage (the fraction of
tokens that are in-vocabulary rather than mapped to the unknown token).

Examples:
  lexitok stats "the quick brown fox"
  cat chapter.txt | lexitok stats --stdin --name mybook`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, useStdin)
			if err != nil {
				return err
			}

			root, err := findRoot()
			if err != nil {
				return err
			}
			cfg, _ := config.Load(root)
			if encoding == "" {
				encoding = cfg.Stats.Encoding
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

			tokens := tokenizer.Split(text, tok.CaseSensitive())
			known := 0
			for _, t := range tokens {
				if tok.HasToken(t) {
					known++
				}
			}

			counter, err := estimate.NewCounter(encoding)
			if err != nil {
				return err
			}
			bpeCount := counter.Count(text)

			fmt.Printf("\nVocabulary:    %s (%d tokens)\n", name, tok.Size())
			fmt.Printf("Word tokens:   %d (+2 with sequence markers)\n", len(tokens))
			fmt.Printf("%-14s %d\n", encoding+":", bpeCount)
			if len(tokens) > 0 {
				fmt.Printf("Coverage:      %d/%d in vocabulary (%.1f%%)\n",
					known, len(tokens), 100*float64(known)/float64(len(tokens)))
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "read input from stdin")
	cmd.Flags().StringVar(&encoding, "encoding", "", "tiktoken encoding (default from config)")

	return cmd
}
