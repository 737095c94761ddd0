package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStreams(t *testing.T, input string) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	SetStreams(strings.NewReader(input), out, errOut)
	t.Cleanup(ResetStreams)
	return out, errOut
}

func TestPrintHelpers(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		noColor bool
		print   func()
		wantOut string
		wantErr string
	}{
		{
			name:    "success with color",
			print:   func() { PrintSuccess("saved %s", "duration") },
			wantOut: "✓ saved duration\n",
		},
		{
			name:    "success without color",
			noColor: true,
			print:   func() { PrintSuccess("saved") },
			wantOut: "OK: saved\n",
		},
		{
			name:  "quiet hides success",
			quiet: true,
			print: func() { PrintSuccess("saved") },
		},
		{
			name:    "info",
			print:   func() { PrintInfo("%d exercises", 3) },
			wantOut: "ℹ 3 exercises\n",
		},
		{
			name:    "warning goes to stderr even when quiet",
			quiet:   true,
			print:   func() { PrintWarning("careful") },
			wantErr: "⚠ careful\n",
		},
		{
			name:    "error without color",
			noColor: true,
			print:   func() { PrintError("broken") },
			wantErr: "ERROR: broken\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := captureStreams(t, "")
			SetGlobalFlags(tt.quiet, tt.noColor, false)

			tt.print()

			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantErr, errOut.String())
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		skip       bool
		want       bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "full yes uppercase", input: "YES\n", want: true},
		{name: "no", input: "n\n", defaultYes: true, want: false},
		{name: "empty uses default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty uses default no", input: "\n", want: false},
		{name: "answer without newline", input: "y", want: true},
		{name: "skip confirm", skip: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := captureStreams(t, tt.input)
			SetGlobalFlags(false, false, tt.skip)

			got, err := Confirm("Reset all values?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if !tt.skip {
				assert.Contains(t, out.String(), "Reset all values?")
			}
		})
	}
}
