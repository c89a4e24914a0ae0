// Package config manages global (~/.config/lexitok/config.toml) and
// per-project (.lexitok/config.toml) configuration for lexitok.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// GlobalConfig holds user-wide settings.
type GlobalConfig struct {
	Tokenizer TokenizerConfig `toml:"tokenizer"`
	Corpus    CorpusConfig    `toml:"corpus"`
	Stats     StatsConfig     `toml:"stats"`
}

// TokenizerConfig holds the defaults applied to newly built vocabularies.
type TokenizerConfig struct {
	SpecialTokens []string `toml:"special_tokens"`
	CaseSensitive bool     `toml:"case_sensitive"`
	MaxVocabSize  int      `toml:"max_vocab_size"` // 0 = unlimited
}

// CorpusConfig controls directory ingestion for corpus builds.
type CorpusConfig struct {
	Extensions []string `toml:"extensions"`
	MaxFileKB  int      `toml:"max_file_kb"`
}

// StatsConfig controls the reference token counter used by `lexitok stats`.
type StatsConfig struct {
	Encoding string `toml:"encoding"`
}

// ProjectConfig holds per-project overrides stored in .lexitok/config.toml.
type ProjectConfig struct {
	Tokenizer TokenizerConfig `toml:"tokenizer"`
	Project   ProjectMeta     `toml:"project"`
}

type ProjectMeta struct {
	Name string `toml:"name"`
}

// DefaultGlobal returns sensible defaults.
func DefaultGlobal() GlobalConfig {
	return GlobalConfig{
		Tokenizer: TokenizerConfig{
			SpecialTokens: []string{"<PAD>", "<UNK>", "<CLS>", "<SEP>"},
			CaseSensitive: false,
			MaxVocabSize:  0,
		},
		Corpus: CorpusConfig{
			Extensions: []string{".txt", ".md", ".rst", ".text"},
			MaxFileKB:  512,
		},
		Stats: StatsConfig{
			Encoding: "cl100k_base",
		},
	}
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lexitok", "config.toml"), nil
}

// LoadGlobal loads the global config, applying defaults for any missing values.
func LoadGlobal() (GlobalConfig, error) {
	cfg := DefaultGlobal()

	path, err := GlobalConfigPath()
	if err != nil {
		return cfg, nil // Return defaults if we can't determine home dir.
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // File doesn't exist yet — use defaults.
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: load global: %w", err)
	}
	return cfg, nil
}

// SaveGlobal writes the global config to disk.
func SaveGlobal(cfg GlobalConfig) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create global config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// LoadProject loads .lexitok/config.toml from the given project root.
func LoadProject(root string) (ProjectConfig, error) {
	var cfg ProjectConfig
	path := filepath.Join(root, ".lexitok", "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: load project: %w", err)
	}
	return cfg, nil
}

// SaveProject writes the project config to .lexitok/config.toml.
func SaveProject(root string, cfg ProjectConfig) error {
	dir := ProjectConfigDirPath(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: mkdir project: %w", err)
	}

	path := filepath.Join(dir, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create project config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// ProjectDBPath returns the path to the project's SQLite database.
func ProjectDBPath(root string) string {
	return filepath.Join(root, ".lexitok", "lexitok.db")
}

// ProjectConfigDirPath returns the path to the project's .lexitok/ directory.
func ProjectConfigDirPath(root string) string {
	return filepath.Join(root, ".lexitok")
}

// Load returns the effective config for a project root: global settings with
// any project tokenizer overrides applied.
func Load(root string) (GlobalConfig, error) {
	global, err := LoadGlobal()
	if err != nil {
		global = DefaultGlobal()
	}

	project, err := LoadProject(root)
	if err != nil {
		return global, nil
	}
	if len(project.Tokenizer.SpecialTokens) > 0 {
		global.Tokenizer.SpecialTokens = project.Tokenizer.SpecialTokens
	}
	if project.Tokenizer.CaseSensitive {
		global.Tokenizer.CaseSensitive = true
	}
	if project.Tokenizer.MaxVocabSize > 0 {
		global.Tokenizer.MaxVocabSize = project.Tokenizer.MaxVocabSize
	}

	return global, nil
}
