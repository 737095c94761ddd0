package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/cmd/commands"
	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	outputFlag    string
	quietFlag     bool
	noColorFlag   bool
	yesFlag       bool
	dataDirFlag   string
	ephemeralFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "baldog",
	Short: "Basketball warm-up guide for the terminal",
	Long: `baldog guides basketball warm-ups from the terminal. Browse exercises by
category, save your own duration, repetitions and rest values per intensity,
and run timed warm-ups in the interactive TUI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
		cli.SetDataDir(dataDirFlag, ephemeralFlag)
		return cli.ValidateOutputFormat(outputFlag)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cc := cli.NewCommandContext()
		if err := cc.ValidateProject(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found.\n", cc.DataDir)
			fmt.Fprintf(os.Stderr, "Please run 'baldog init' first, or start with --ephemeral to try it without saving.\n")
			os.Exit(1)
		}

		if err := cc.Open(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer cc.Close()

		app := tui.NewApp(tui.Deps{
			Catalog:    cc.Catalog,
			Container:  cc.Container,
			Profile:    cc.Profile,
			Onboarding: cc.Onboarding,
			History:    cc.History,
			Logger:     cc.Logger,
			UI:         cc.Settings.UI,
		})

		// Launch TUI
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			cc.Logger.Error("tui exited with error", "error", err)
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			cc.Close()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable symbols in status output")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Data directory (default .baldog, or $BALDOG_DATA_DIR)")
	rootCmd.PersistentFlags().BoolVar(&ephemeralFlag, "ephemeral", false, "Keep everything in memory for this run")

	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(version))
	rootCmd.AddCommand(commands.NewExercisesCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewIntensityCommand())
	rootCmd.AddCommand(commands.NewProfileCommand())
	rootCmd.AddCommand(commands.NewHistoryCommand())
	rootCmd.AddCommand(commands.NewOnboardingCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
