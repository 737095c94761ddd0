package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/models"
)

// IntensityResult is the structured output of the intensity command
type IntensityResult struct {
	Intensity models.Intensity `json:"intensity" yaml:"intensity"`
}

// NewIntensityCommand creates the intensity command
func NewIntensityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "intensity [level]",
		Short: "Show or change the saved intensity",
		Long: `Show the intensity the settings form opens with, or change it.

Levels: beginner, intermediate, advanced

Examples:
  baldog intensity
  baldog intensity advanced`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(models.IntensityBeginner), string(models.IntensityIntermediate), string(models.IntensityAdvanced)},
		PreRunE:   requireDataDir,
		RunE:      runIntensity,
	}
}

func runIntensity(cmd *cobra.Command, args []string) error {
	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	if len(args) == 0 {
		level := cc.Container.State().IntensityValue
		format := outputFormat(cmd)
		if cli.IsStructured(format) {
			return cli.OutputResults(cmd.OutOrStdout(), format, IntensityResult{Intensity: level})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Current intensity: %s\n", level.Label())
		return nil
	}

	level, err := models.ParseIntensity(args[0])
	if err != nil {
		return err
	}
	if err := cc.Container.SelectIntensity(cmd.Context(), level); err != nil {
		return err
	}

	cli.PrintSuccess("Intensity set to %s", level.Label())
	return nil
}
