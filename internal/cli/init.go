package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joaohenriqueluz/took/internal/config"
	"github.com/joaohenriqueluz/took/internal/githook"
	"github.com/joaohenriqueluz/took/internal/infra/store"
)

func init() {
	initCmd.Flags().BoolVar(&initGit, "git", false, "Also install took's git hooks into this repository")
	rootCmd.AddCommand(initCmd)
}

var initGit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a took directory for this project",
	Long: `Create a .took directory with an empty log in the current directory.

Commands run anywhere below it will track time into this project store
instead of the global one under your home directory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	dir, created, err := store.Init(cmd.Context(), cwd, cfg.Store.DirName, cfg.Store.FileName, cfg.Store.LockTimeout())
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("Initialized took directory at %s\n", dir)
	} else {
		fmt.Printf("took directory already exists at %s. No action taken.\n", dir)
	}

	if initGit {
		installed, err := githook.Install(cwd)
		if errors.Is(err, githook.ErrNoRepository) {
			fmt.Println("No .git directory found. Git hooks will not be installed.")
			return nil
		}
		if err != nil {
			return err
		}
		for _, path := range installed {
			fmt.Println(path)
		}
		fmt.Println("Git hooks have been initialized.")
	}
	return nil
}
