package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/profile"
	"github.com/baldog/baldog-terminal/pkg/settings"
)

// ProfileResult is the structured output of the profile command
type ProfileResult struct {
	Name string `json:"name" yaml:"name"`
}

// NewProfileCommand creates the profile command
func NewProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [name]",
		Short: "Show or change your display name",
		Long: fmt.Sprintf(`Show the name used in the home screen greeting, or change it.

Names are limited to %d characters. A blank name keeps the current one.

Examples:
  baldog profile
  baldog profile Bob`, profile.MaxNameLength),
		Aliases: []string{"name"},
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireDataDir,
		RunE:    runProfile,
	}
}

func runProfile(cmd *cobra.Command, args []string) error {
	cc, err := openContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	current, err := cc.Profile.Load(cmd.Context())
	if err != nil {
		cli.PrintWarning("Could not load your name: %v", err)
	}

	if len(args) == 0 {
		format := outputFormat(cmd)
		if cli.IsStructured(format) {
			return cli.OutputResults(cmd.OutOrStdout(), format, ProfileResult{Name: current})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Hello, %s\n", current)
		return nil
	}

	name, err := cc.Profile.UpdateName(cmd.Context(), args[0])
	if errors.Is(err, profile.ErrNameTooLong) {
		return &alertError{alert: settings.Alert{Title: "Error", Message: profile.NameTooLongMessage}, err: err}
	}
	if err != nil {
		return err
	}
	if strings.TrimSpace(args[0]) == "" {
		cli.PrintInfo("Name unchanged: %s", name)
		return nil
	}

	cli.PrintSuccess("%s", strings.ReplaceAll(profile.SuccessMessage(name), "\n", ""))
	return nil
}
