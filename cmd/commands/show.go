package commands

import (
	"fmt"
	"strconv"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/exercise"
	"github.com/baldog/baldog-terminal/pkg/models"
)

var showIntensity string

// ExerciseDetail is the structured output of the show command
type ExerciseDetail struct {
	ID          models.ExerciseID      `json:"id" yaml:"id"`
	Name        string                 `json:"name" yaml:"name"`
	Category    string                 `json:"category" yaml:"category"`
	Description string                 `json:"description" yaml:"description"`
	Video       string                 `json:"video,omitempty" yaml:"video,omitempty"`
	Intensity   models.Intensity       `json:"intensity" yaml:"intensity"`
	Recommended models.IntensityRanges `json:"recommended" yaml:"recommended"`
	Saved       models.FieldValues     `json:"saved" yaml:"saved"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <exercise>",
		Short: "Show an exercise with its recommended and saved values",
		Long: `Show an exercise's description, the recommended ranges for an intensity
and the values you saved for it.

The exercise can be given by id or by name.

Examples:
  # Show by id at the current intensity
  baldog show 1

  # Show by name at a specific intensity
  baldog show "high knees" --intensity advanced`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireDataDir,
		RunE:    runShow,
	}

	cmd.Flags().StringVarP(&showIntensity, "intensity", "i", "", "Intensity level (defaults to the saved one)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	ex, err := cc.Catalog.Resolve(args[0])
	if err != nil {
		return err
	}

	level := cc.Container.State().IntensityValue
	if showIntensity != "" {
		if level, err = models.ParseIntensity(showIntensity); err != nil {
			return err
		}
	}

	recommended, _ := ex.Ranges(level)
	saved, ok, err := cc.Container.Repository().LoadSavedValues(cmd.Context(), ex.ID, level)
	if err != nil {
		return asAlert(err)
	}
	if !ok {
		saved = exercise.InitialValues(cc.Catalog, ex.ID, level)
	}

	detail := ExerciseDetail{
		ID:          ex.ID,
		Name:        ex.Name,
		Category:    ex.Category,
		Description: ex.Description,
		Video:       ex.Video,
		Intensity:   level,
		Recommended: recommended,
		Saved:       saved,
	}

	format := outputFormat(cmd)
	if cli.IsStructured(format) {
		return cli.OutputResults(cmd.OutOrStdout(), format, detail)
	}

	out := cmd.OutOrStdout()
	title := ex.Category
	if cat, ok := cc.Catalog.Category(ex.Category); ok {
		title = cat.Title
	}
	fmt.Fprintln(out, exerciseLabel(ex))
	fmt.Fprintf(out, "Category: %s\n", title)
	if detail.Video != "" {
		fmt.Fprintf(out, "Video: %s\n", detail.Video)
	}
	fmt.Fprintf(out, "\n%s\n\n", wordwrap.String(detail.Description, 72))
	fmt.Fprintf(out, "Intensity: %s\n\n", level.Label())

	table := cli.NewTableFormatter(out)
	table.Header("FIELD", "RECOMMENDED", "SAVED")
	for _, f := range models.Fields {
		r, _ := recommended.Get(f)
		table.Row(f.Label(), exercise.FormatRange(f, r), saved.Get(f))
	}
	table.Flush()
	return nil
}

// exerciseLabel renders "Jumping Jacks (#1)"
func exerciseLabel(ex models.Exercise) string {
	return ex.Name + " (#" + strconv.Itoa(int(ex.ID)) + ")"
}
