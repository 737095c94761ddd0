package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/config"
	"github.com/baldog/baldog-terminal/pkg/models"
)

var (
	initBackend string
	initForce   bool
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the baldog data directory",
		Long: `Creates the data directory with a config.yaml and seeds the exercise
settings from the bundled catalog.

Examples:
  # Initialize with the default file backend
  baldog init

  # Store everything in a single SQLite database
  baldog init --backend sqlite

  # Use a different data directory
  baldog init --data-dir ~/.config/baldog`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateBackend(initBackend)
		},
		RunE: runInit,
	}

	cmd.Flags().StringVar(&initBackend, "backend", models.BackendFile, "Storage backend (file, sqlite, memory)")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	dataDir := cli.ResolveDataDir()
	path := config.Path(dataDir)

	fmt.Fprintf(cmd.OutOrStdout(), "Initializing baldog in %s...\n", dataDir)

	if _, err := os.Stat(path); err == nil && !initForce {
		cli.PrintWarning("%s already exists, use --force to overwrite", path)
	} else {
		cfg := models.DefaultSettings()
		cfg.Storage.Backend = initBackend
		cfg.Storage.Path = dataDir
		if err := config.Write(path, cfg); err != nil {
			return fmt.Errorf("failed to initialize data directory: %w", err)
		}
		cli.PrintSuccess("Created %s", path)
	}

	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	cli.PrintSuccess("Exercise settings ready for %d exercises", cc.Catalog.Len())
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'baldog' to start the interactive TUI.")
	return nil
}
