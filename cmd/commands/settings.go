package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/exercise"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/settings"
	"github.com/baldog/baldog-terminal/pkg/state"
)

var (
	settingsIntensity string
	exportClipboard   bool

	// writeClipboard is swapped in tests; CI machines have no clipboard
	writeClipboard = clipboard.WriteAll
)

// SettingsRow is one exercise's saved values at an intensity
type SettingsRow struct {
	ID        models.ExerciseID  `json:"id" yaml:"id"`
	Name      string             `json:"name" yaml:"name"`
	Intensity models.Intensity   `json:"intensity" yaml:"intensity"`
	Values    models.FieldValues `json:"values" yaml:"values"`
}

// SavedSetting is the structured output of settings set
type SavedSetting struct {
	ID        models.ExerciseID `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	Intensity models.Intensity  `json:"intensity" yaml:"intensity"`
	Field     models.Field      `json:"field" yaml:"field"`
	Value     int               `json:"value" yaml:"value"`
}

// NewSettingsCommand creates the settings command and its subcommands
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change saved exercise values",
		Long: `View and change the duration, repetitions and rest duration saved for
each exercise and intensity.

Values are checked against the exercise's recommended range before they
are saved.`,
	}

	cmd.PersistentFlags().StringVarP(&settingsIntensity, "intensity", "i", "", "Intensity level (defaults to the saved one)")

	cmd.AddCommand(newSettingsShowCommand())
	cmd.AddCommand(newSettingsSetCommand())
	cmd.AddCommand(newSettingsResetCommand())
	cmd.AddCommand(newSettingsExportCommand())

	return cmd
}

func newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [exercise]",
		Short: "Show saved values for every exercise or one exercise",
		Long: `Examples:
  baldog settings show
  baldog settings show "jumping jacks" --intensity advanced
  baldog settings show -o yaml`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireDataDir,
		RunE:    runSettingsShow,
	}
}

func newSettingsSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <exercise> <field> <value>",
		Short: "Save one field for an exercise",
		Long: `Save a duration, repetitions or rest duration value for an exercise at
the current intensity.

Fields: duration, reps, rest

Examples:
  baldog settings set 1 duration 20
  baldog settings set "high knees" reps 25 --intensity intermediate`,
		Args:    cobra.ExactArgs(3),
		PreRunE: requireDataDir,
		RunE:    runSettingsSet,
	}
}

func newSettingsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "reset",
		Short:   "Reset every saved value to the catalog defaults",
		Args:    cobra.NoArgs,
		PreRunE: requireDataDir,
		RunE:    runSettingsReset,
	}
}

func newSettingsExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print or copy the saved exercise settings",
		Long: `Export the saved exercise settings as JSON (or YAML with -o yaml).

Examples:
  baldog settings export > settings.json
  baldog settings export --clipboard`,
		Args:    cobra.NoArgs,
		PreRunE: requireDataDir,
		RunE:    runSettingsExport,
	}

	cmd.Flags().BoolVarP(&exportClipboard, "clipboard", "c", false, "Copy to the clipboard instead of printing")

	return cmd
}

// resolveIntensity applies --intensity for this run only, without
// remembering it as the saved intensity
func resolveIntensity(cc *cli.CommandContext) (models.Intensity, error) {
	if settingsIntensity == "" {
		return cc.Container.State().IntensityValue, nil
	}
	level, err := models.ParseIntensity(settingsIntensity)
	if err != nil {
		return models.IntensityNone, err
	}
	cc.Container.Dispatch(state.SetIntensityValue(level))
	return level, nil
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	level, err := resolveIntensity(cc)
	if err != nil {
		return err
	}

	exercises := cc.Catalog.All()
	if len(args) > 0 {
		ex, err := cc.Catalog.Resolve(args[0])
		if err != nil {
			return err
		}
		exercises = []models.Exercise{ex}
	}

	snap, err := cc.Container.Repository().Snapshot(cmd.Context())
	if err != nil {
		return asAlert(err)
	}

	rows := make([]SettingsRow, 0, len(exercises))
	for _, ex := range exercises {
		values, ok := snap.Values(ex.ID, level)
		if !ok {
			values = exercise.InitialValues(cc.Catalog, ex.ID, level)
		}
		rows = append(rows, SettingsRow{ID: ex.ID, Name: ex.Name, Intensity: level, Values: values})
	}

	format := outputFormat(cmd)
	if cli.IsStructured(format) {
		return cli.OutputResults(cmd.OutOrStdout(), format, rows)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Intensity: %s\n\n", level.Label())
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "NAME", "DURATION", "REPS", "REST")
	for _, row := range rows {
		table.Row(strconv.Itoa(int(row.ID)), row.Name, row.Values.Duration, row.Values.Repetitions, row.Values.RestDuration)
	}
	table.Flush()
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	field, err := models.ParseField(args[1])
	if err != nil {
		return err
	}

	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	ex, err := cc.Catalog.Resolve(args[0])
	if err != nil {
		return err
	}
	level, err := resolveIntensity(cc)
	if err != nil {
		return err
	}

	if err := cc.Container.SelectExercise(cmd.Context(), ex.ID); err != nil {
		cli.PrintWarning("Could not load saved values, using defaults: %v", err)
	}
	cc.Container.SetField(field, args[2])

	n, err := cc.Container.Save(cmd.Context(), field)
	if err != nil {
		return asAlert(err)
	}

	format := outputFormat(cmd)
	if cli.IsStructured(format) {
		return cli.OutputResults(cmd.OutOrStdout(), format, SavedSetting{
			ID:        ex.ID,
			Name:      ex.Name,
			Intensity: level,
			Field:     field,
			Value:     n,
		})
	}

	cli.PrintSuccess("%s", settings.SavedAlert(field).Message)
	cli.PrintInfo("%s, %s: %d %s", exerciseLabel(ex), level.Label(), n, field.Unit())
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	ok, err := cli.Confirm("Reset all exercise values to their defaults?", false)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		cli.PrintInfo("Reset cancelled")
		return nil
	}

	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	if err := cc.Container.ResetAll(cmd.Context()); err != nil {
		return asAlert(err)
	}

	cli.PrintSuccess("%s", settings.ResetAlert().Message)
	return nil
}

func runSettingsExport(cmd *cobra.Command, args []string) error {
	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	snap, err := cc.Container.Repository().Snapshot(cmd.Context())
	if err != nil {
		return asAlert(err)
	}

	var buf bytes.Buffer
	if format := outputFormat(cmd); format == string(cli.FormatYAML) {
		if err := cli.OutputResults(&buf, format, snap); err != nil {
			return err
		}
	} else {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	if !exportClipboard {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := writeClipboard(buf.String()); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	cli.PrintSuccess("Settings for %d exercises copied to clipboard", len(snap))
	return nil
}
