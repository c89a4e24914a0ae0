package cli

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lexitok/lexitok/internal/config"
	"github.com/lexitok/lexitok/internal/corpus"
	"github.com/lexitok/lexitok/internal/tokenizer"
	"github.com/lexitok/lexitok/internal/vocab"
)

func newWatchCmd() *cobra.Command {
	var (
		name       string
		dir        string
		debounceMs int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory and rebuild the corpus vocabulary on change",
		Long: `Start a long-running watcher that monitors a directory for text-file
changes (create, modify, delete) and rebuilds the frequency-ranked vocabulary
from the full corpus after each batch of changes.

Changes are debounced so that rapid edits are batched into a single rebuild.

Press Ctrl-C to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := findRoot()
			if err != nil {
				return err
			}
			cfg, _ := config.Load(root)

			if dir == "" {
				dir = root
			}
			dir, _ = filepath.Abs(dir)

			store, closeDB, err := openStore(root)
			if err != nil {
				return err
			}
			defer closeDB()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			ignore := corpus.NewIgnoreMatcher(dir)
			if err := addWatchDirs(watcher, dir, ignore); err != nil {
				return fmt.Errorf("add watch directories: %w", err)
			}

			allowed := make(map[string]bool, len(cfg.Corpus.Extensions))
			for _, ext := range cfg.Corpus.Extensions {
				allowed[ext] = true
			}

			// Build once up front so the vocabulary exists before the
			// first change.
			if err := rebuildCorpus(store, name, dir, cfg); err != nil {
				return err
			}

			debounce := time.Duration(debounceMs) * time.Millisecond
			fmt.Printf("Watching %s (debounce %s). Press Ctrl-C to stop.\n", dir, debounce)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			dirty := false
			timer := time.NewTimer(debounce)
			timer.Stop() // Don't fire immediately.

			for {
				select {
				case <-sigCh:
					fmt.Println("\nStopping watcher.")
					return nil

				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}

					rel, err := filepath.Rel(dir, event.Name)
					if err != nil || rel == "." {
						continue
					}
					if shouldIgnoreEvent(rel, ignore) {
						continue
					}

					// If a new directory was created, start watching it.
					if event.Has(fsnotify.Create) {
						if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
							if !corpus.HardIgnore(filepath.Base(event.Name)) {
								_ = watcher.Add(event.Name)
							}
							continue
						}
					}

					if !allowed[filepath.Ext(rel)] {
						continue
					}

					dirty = true
					timer.Reset(debounce)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "  watch error: %v\n", err)

				case <-timer.C:
					if !dirty {
						continue
					}
					dirty = false
					if err := rebuildCorpus(store, name, dir, cfg); err != nil {
						fmt.Fprintf(os.Stderr, "  rebuild error: %v\n", err)
					}
				}
			}
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultVocabName, "vocabulary name")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to watch (default: project root)")
	cmd.Flags().IntVar(&debounceMs, "debounce", 500, "debounce interval in milliseconds")

	return cmd
}

// rebuildCorpus reads the whole corpus and replaces the saved vocabulary.
func rebuildCorpus(store *vocab.Store, name, dir string, cfg config.GlobalConfig) error {
	res, err := corpus.Read(corpus.Options{
		Root:       dir,
		Extensions: cfg.Corpus.Extensions,
		MaxFileKB:  cfg.Corpus.MaxFileKB,
	})
	if err != nil {
		return err
	}

	tok := tokenizer.New(tokenizer.Options{
		SpecialTokens: cfg.Tokenizer.SpecialTokens,
		CaseSensitive: cfg.Tokenizer.CaseSensitive,
		MaxVocabSize:  cfg.Tokenizer.MaxVocabSize,
	})
	buildRes := tok.BuildFromCorpus(res.Texts)

	id, err := store.Save(name, tok)
	if err != nil {
		return err
	}
	if err := store.RecordBuild(id, "watch:"+dir, len(res.Texts), buildRes); err != nil {
		return err
	}

	ts := time.Now().Format("15:04:05")
	fmt.Printf("[%s] rebuilt %q: %d tokens from %d text(s)", ts, name, buildRes.TokenCount, len(res.Texts))
	if buildRes.Truncated {
		fmt.Printf(" (size limit reached)")
	}
	fmt.Println()
	return nil
}

// addWatchDirs recursively adds directories to the watcher, skipping ignored ones.
func addWatchDirs(watcher *fsnotify.Watcher, root string, ignore *corpus.IgnoreMatcher) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if corpus.HardIgnore(d.Name()) {
			return filepath.SkipDir
		}
		rel, _ := filepath.Rel(root, path)
		if rel != "." && ignore.Match(rel) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// shouldIgnoreEvent checks whether a relative path should be ignored by the watcher.
func shouldIgnoreEvent(rel string, ignore *corpus.IgnoreMatcher) bool {
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if corpus.HardIgnore(part) {
			return true
		}
	}
	return ignore.Match(rel)
}
