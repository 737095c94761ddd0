package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
)

var onboardingReset bool

// OnboardingResult is the structured output of the onboarding command
type OnboardingResult struct {
	Shown bool `json:"shown" yaml:"shown"`
}

// NewOnboardingCommand creates the onboarding command
func NewOnboardingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Show or reset the first-run welcome status",
		Long: `Report whether the welcome slides were already shown, or reset the
flag so the TUI shows them on the next launch.

Examples:
  baldog onboarding
  baldog onboarding --reset`,
		Args:    cobra.NoArgs,
		PreRunE: requireDataDir,
		RunE:    runOnboarding,
	}

	cmd.Flags().BoolVar(&onboardingReset, "reset", false, "Show the welcome slides again on the next launch")

	return cmd
}

func runOnboarding(cmd *cobra.Command, args []string) error {
	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	if onboardingReset {
		if err := cc.Onboarding.Reset(cmd.Context()); err != nil {
			return err
		}
		cli.PrintSuccess("Welcome slides will show on the next launch")
		return nil
	}

	shown, err := cc.Onboarding.Status(cmd.Context())
	if err != nil {
		return err
	}

	format := outputFormat(cmd)
	if cli.IsStructured(format) {
		return cli.OutputResults(cmd.OutOrStdout(), format, OnboardingResult{Shown: shown})
	}
	if shown {
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome slides: already shown")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome slides: not shown yet")
	}
	return nil
}
