package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lexitok/lexitok/internal/config"
	"github.com/lexitok/lexitok/internal/corpus"
	"github.com/lexitok/lexitok/internal/tokenizer"
)

func newBuildCmd() *cobra.Command {
	var (
		name          string
		files         []string
		dir           string
		useStdin      bool
		asCorpus      bool
		maxSize       int
		caseSensitive bool
	)

	cmd := &cobra.Command{
		Use:   "build [text]",
		Short: "Build a vocabulary from text, files, or a directory",
		Long: `Build a named vocabulary and save it in the project database.

With a single input text, ids are assigned in first-seen order. With several
inputs (or --corpus), occurrences are counted across all of them and ids are
assigned by descending frequency, so common tokens get the lowest ids.

Examples:
  lexitok build "the quick brown fox"
  lexitok build --file a.txt --file b.txt --name mybook
  lexitok build --dir docs/ --corpus --max-size 5000
  cat input.txt | lexitok build --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := findRoot()
			if err != nil {
				return err
			}
			cfg, _ := config.Load(root)

			texts, source, err := collectTexts(args, files, dir, useStdin, cfg)
			if err != nil {
				return err
			}
			if len(texts) == 0 {
				return fmt.Errorf("no input text found")
			}

			if !cmd.Flags().Changed("max-size") {
				maxSize = cfg.Tokenizer.MaxVocabSize
			}
			if !cmd.Flags().Changed("case-sensitive") {
				caseSensitive = cfg.Tokenizer.CaseSensitive
			}

			tok := tokenizer.New(tokenizer.Options{
				SpecialTokens: cfg.Tokenizer.SpecialTokens,
				CaseSensitive: caseSensitive,
				MaxVocabSize:  maxSize,
			})

			var res tokenizer.BuildResult
			if asCorpus || len(texts) > 1 {
				res = tok.BuildFromCorpus(texts)
				source = source + " (corpus)"
			} else {
				res = tok.BuildFromText(texts[0])
			}

			store, closeDB, err := openStore(root)
			if err != nil {
				return err
			}
			defer closeDB()

			id, err := store.Save(name, tok)
			if err != nil {
				return err
			}
			if err := store.RecordBuild(id, source, len(texts), res); err != nil {
				return err
			}

			fmt.Printf("Built vocabulary %q: %d tokens (%d special) from %d text(s)\n",
				name, res.TokenCount, len(cfg.Tokenizer.SpecialTokens), len(texts))
			if res.Truncated {
				fmt.Fprintf(os.Stderr,
					"Warning: vocabulary size limit (%d) reached; remaining tokens were not assigned\n", maxSize)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "read input from file (repeatable)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "read all text files under a directory")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "read input from stdin")
	cmd.Flags().BoolVar(&asCorpus, "corpus", false, "force the frequency-ranked corpus strategy")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "vocabulary size cap, 0 = unlimited")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "keep case instead of folding to lower")

	return cmd
}

// collectTexts gathers the build input from whichever source was given:
// positional text, --file, --dir, or stdin.
func collectTexts(args, files []string, dir string, useStdin bool, cfg config.GlobalConfig) ([]string, string, error) {
	switch {
	case dir != "":
		var bar *progressbar.ProgressBar
		if stderrIsTerminal() {
			bar = progressbar.NewOptions(-1,
				progressbar.OptionSetDescription("  Reading files"),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
		}
		res, err := corpus.Read(corpus.Options{
			Root:       dir,
			Extensions: cfg.Corpus.Extensions,
			MaxFileKB:  cfg.Corpus.MaxFileKB,
			Progress: func(string) {
				if bar != nil {
					_ = bar.Add(1)
				}
			},
		})
		if bar != nil {
			_ = bar.Finish()
		}
		if err != nil {
			return nil, "", err
		}
		if len(res.Errors) > 0 {
			fmt.Fprintf(os.Stderr, "  Warning: %d file(s) could not be read\n", len(res.Errors))
		}
		return res.Texts, "dir:" + dir, nil

	case len(files) > 0:
		texts := make([]string, 0, len(files))
		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, "", fmt.Errorf("read %s: %w", path, err)
			}
			texts = append(texts, string(data))
		}
		return texts, "files", nil

	default:
		text, err := readText(args, useStdin)
		if err != nil {
			return nil, "", err
		}
		if text == "" {
			return nil, "", nil
		}
		source := "text"
		if useStdin || len(args) == 0 {
			source = "stdin"
		}
		return []string{text}, source, nil
	}
}
