// Package commands holds the baldog subcommands. Each file exposes a
// NewXCommand constructor that the root command registers.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/settings"
)

// requireDataDir is shared as PreRunE by commands that read stored data
func requireDataDir(cmd *cobra.Command, args []string) error {
	return cli.NewCommandContext().ValidateProject()
}

// openContext loads config and storage for a command. The caller closes it.
func openContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	cc := cli.NewCommandContext()
	if err := cc.Open(cmd.Context()); err != nil {
		return nil, err
	}
	return cc, nil
}

// outputFormat reads the persistent --output flag, defaulting to text
func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return string(cli.FormatText)
	}
	return format
}

// alertError carries the user-facing alert text while keeping the settings
// error reachable through errors.Is and errors.As
type alertError struct {
	alert settings.Alert
	err   error
}

func (e *alertError) Error() string { return e.alert.Message }

func (e *alertError) Unwrap() error { return e.err }

// asAlert converts a settings failure into the message the TUI would show
func asAlert(err error) error {
	if err == nil {
		return nil
	}
	return &alertError{alert: settings.AlertFor(err), err: err}
}
