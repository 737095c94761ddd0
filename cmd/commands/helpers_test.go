package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/testhelpers"
)

// setupDataDir initializes a file-backed data dir and points the CLI at it
func setupDataDir(t *testing.T) *testhelpers.TestEnvironment {
	t.Helper()
	env := testhelpers.NewTestEnvironment(t)
	env.InitDataDir(models.BackendFile)
	useDataDir(t, env.DataDir())
	return env
}

func useDataDir(t *testing.T, dir string) {
	t.Helper()
	cli.SetDataDir(dir, false)
	t.Cleanup(func() { cli.SetDataDir("", false) })
}

// execute runs cmd under a bare root carrying the persistent --output flag
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", cmd, args...)
}

func executeWithInput(t *testing.T, input string, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "baldog", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("output", "o", "text", "Output format")
	root.AddCommand(cmd)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	cli.SetStreams(strings.NewReader(input), buf, buf)
	t.Cleanup(cli.ResetStreams)

	root.SetArgs(append([]string{cmd.Name()}, args...))
	err := root.Execute()
	return buf.String(), err
}
