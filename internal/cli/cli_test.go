package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// execute runs the root command with args and returns its stdout. Flags
// are reset first because the command tree is package state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSearchTextOutput(t *testing.T) {
	out, err := execute(t, "search", "--depth", "2", "--pool", "R U", "--workers", "1", "--summary=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "depth: 2   2          RR", strings.TrimRight(lines[0], " "))
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[1], " "), "RU"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[3], " "), "UU"))
}

func TestSearchJSONOutput(t *testing.T) {
	out, err := execute(t, "search", "--from", "1", "--to", "2", "--pool", "F B", "--json", "--workers", "2")
	require.NoError(t, err)

	var results []resultJSON
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var r resultJSON
		require.NoError(t, json.Unmarshal([]byte(line), &r))
		results = append(results, r)
	}
	require.Len(t, results, 2+4)
	assert.Equal(t, 1, results[0].Depth)
	assert.Equal(t, 4, results[0].Order)
	assert.Equal(t, "F", results[0].Name)
	assert.Equal(t, "F B", results[3].Sequence)
	assert.NotEmpty(t, results[0].RunID)
	for _, r := range results {
		assert.Equal(t, results[0].RunID, r.RunID)
	}
}

func TestSearchSummary(t *testing.T) {
	out, err := execute(t, "search", "--depth", "1", "--pool", "R R' M")
	require.NoError(t, err)
	assert.Contains(t, out, "Depth 1 summary")
	assert.Contains(t, out, "3 sequences")
	assert.Contains(t, out, "4:3")
}

func TestSearchRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "search", "--pool", "R Q")
	assert.Error(t, err)

	_, err = execute(t, "search", "--pool", "R R")
	assert.Error(t, err)

	_, err = execute(t, "search", "--from", "3", "--to", "1")
	assert.Error(t, err)

	_, err = execute(t, "search", "--depth", "2", "--pool", "R U", "--max-order", "4", "--workers", "1")
	assert.Error(t, err)
}

func TestOrderCommand(t *testing.T) {
	out, err := execute(t, "order", "R", "basic-move")
	require.NoError(t, err)
	assert.Contains(t, out, "R: 4")
	assert.Contains(t, out, "R U R' U': 6")

	out, err = execute(t, "order", "R", "--analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "2x4-cycle")
	assert.Contains(t, out, "corner")
	assert.Contains(t, out, "edge")

	_, err = execute(t, "order", "R Q")
	assert.Error(t, err)

	_, err = execute(t, "order")
	assert.Error(t, err)
}

func TestMovesCommand(t *testing.T) {
	out, err := execute(t, "moves")
	require.NoError(t, err)
	assert.Contains(t, out, "R'  YZ plane 2, counter-clockwise")
	assert.Contains(t, out, "one-of-everything")
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "verify")
	require.NoError(t, err)
	assert.Equal(t, 18, strings.Count(out, " ok "))
	assert.NotContains(t, out, "FAIL")
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"search", "order", "moves", "verify"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
