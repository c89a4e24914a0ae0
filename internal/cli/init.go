package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lexitok/lexitok/internal/config"
	"github.com/lexitok/lexitok/internal/db"
)

func newInitCmd() *cobra.Command {
	var projectRoot string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize lexitok in the current project",
		Long: `Set up the .lexitok/ directory with a SQLite database and a project
config. Vocabularies built afterwards are stored there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := projectRoot
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = cwd
			}
			root, _ = filepath.Abs(root)

			// Open (or create) the database.
			database, err := db.Open(config.ProjectDBPath(root))
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer database.Close()

			// Write a project config seeded from the global defaults so
			// the knobs are discoverable.
			pcfg, err := config.LoadProject(root)
			if err != nil {
				return err
			}
			if pcfg.Project.Name == "" {
				pcfg.Project.Name = filepath.Base(root)
			}
			if err := config.SaveProject(root, pcfg); err != nil {
				return err
			}

			fmt.Printf("Initialized lexitok in %s\n", config.ProjectConfigDirPath(root))
			fmt.Println("Next: build a vocabulary, e.g.")
			fmt.Println("  lexitok build \"your text here\"")
			fmt.Println("  lexitok build --dir docs/ --corpus")
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRoot, "root", "", "project root (default: current directory)")

	return cmd
}
