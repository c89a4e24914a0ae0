package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/lexitok/lexitok/internal/config"
	"github.com/lexitok/lexitok/internal/db"
	"github.com/lexitok/lexitok/internal/vocab"
)

// defaultVocabName is used when --name is not given.
const defaultVocabName = "default"

// findRoot walks up from the working directory looking for a .lexitok/
// directory.
func findRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	dir, _ := filepath.Abs(cwd)
	for {
		if _, err := os.Stat(filepath.Join(dir, ".lexitok")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no .lexitok directory found. Run `lexitok init` first")
}

// openStore opens the project database and returns the vocabulary store
// with a close func.
func openStore(root string) (*vocab.Store, func() error, error) {
	dbPath := config.ProjectDBPath(root)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("Lexitok not initialized. Run `lexitok init` first")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return vocab.NewStore(database), database.Close, nil
}

// readText resolves the text input for a command: positional args joined by
// spaces, or stdin when --stdin is set or args are empty on a piped stdin.
func readText(args []string, useStdin bool) (string, error) {
	if useStdin || (len(args) == 0 && !stdinIsTerminal()) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no text given; pass it as an argument or pipe it on stdin")
	}
	return strings.Join(args, " "), nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func stderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
