// Package corpus collects text documents from a directory tree for
// frequency-ranked vocabulary builds.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Options controls a directory read.
type Options struct {
	// Root is the directory to walk.
	Root string

	// Extensions is the allow-list of file extensions to ingest
	// (including the dot). Empty means the default text extensions.
	Extensions []string

	// MaxFileKB skips files larger than this many KiB. Zero means no cap.
	MaxFileKB int

	// Progress, when non-nil, is called once per ingested file.
	Progress func(path string)
}

// Result holds the documents read from a directory, in lexical walk order so
// corpus frequency ties stay reproducible across runs.
type Result struct {
	Texts  []string
	Paths  []string
	Errors []error
}

var defaultExtensions = map[string]bool{
	".txt": true, ".md": true, ".rst": true, ".text": true,
}

// hardIgnored contains directory names that are always skipped regardless of
// .gitignore.
var hardIgnored = map[string]bool{
	".git":         true,
	".lexitok":     true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
}

// HardIgnore returns true if the directory name is always excluded.
func HardIgnore(name string) bool {
	return hardIgnored[name]
}

// Read walks opts.Root and returns the contents of every matching text file.
// Files matched by the root's .gitignore are skipped. Unreadable files are
// collected in Result.Errors rather than aborting the walk.
func Read(opts Options) (Result, error) {
	var res Result

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return res, fmt.Errorf("corpus: resolve root: %w", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return res, fmt.Errorf("corpus: %s is not a directory", opts.Root)
	}

	allowed := defaultExtensions
	if len(opts.Extensions) > 0 {
		allowed = make(map[string]bool, len(opts.Extensions))
		for _, ext := range opts.Extensions {
			allowed[ext] = true
		}
	}

	ignore := NewIgnoreMatcher(root)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			res.Errors = append(res.Errors, err)
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			if HardIgnore(d.Name()) || ignore.Match(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !allowed[filepath.Ext(d.Name())] || ignore.Match(rel) {
			return nil
		}
		if opts.MaxFileKB > 0 {
			if info, err := d.Info(); err == nil && info.Size() > int64(opts.MaxFileKB)*1024 {
				return nil
			}
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			res.Errors = append(res.Errors, readErr)
			return nil
		}

		res.Texts = append(res.Texts, string(data))
		res.Paths = append(res.Paths, rel)
		if opts.Progress != nil {
			opts.Progress(rel)
		}
		return nil
	})
	if walkErr != nil {
		return res, fmt.Errorf("corpus: walk %s: %w", opts.Root, walkErr)
	}
	return res, nil
}
