package main

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/sghaida/stairs/config"
	"github.com/sghaida/stairs/stairs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Default run
// -----------------------------------------------------------------------------

// TestRun_NoArgs verifies the default run prints count(30) and a duration.
func TestRun_NoArgs(t *testing.T) {
	res := runCmd(t)

	require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)
	assert.Empty(t, res.stderr)

	result, elapsed := outputLines(t, res.stdout)
	assert.Equal(t, "53798080", result)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
}

// TestRun_MatchesIndependentTable verifies the printed value against the iterative count.
func TestRun_MatchesIndependentTable(t *testing.T) {
	want, err := stairs.Table(config.DefaultSteps)
	require.NoError(t, err)

	res := runCmd(t)
	require.Equal(t, exitOK, res.code)

	result, _ := outputLines(t, res.stdout)
	assert.Equal(t, strconv.FormatInt(want, 10), result)
}

//
// -----------------------------------------------------------------------------
// Flags and strategies
// -----------------------------------------------------------------------------

// TestRun_Strategies verifies each strategy prints the expected count.
func TestRun_Strategies(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"naive small", []string{"-n", "4"}, "7"},
		{"naive zero", []string{"--steps", "0"}, "1"},
		{"table", []string{"-s", "table", "-n", "30"}, "53798080"},
		{"table largest", []string{"--strategy=table", "--steps=72"}, "7015254043203144209"},
		{"big", []string{"-s", "big", "-n", "100"}, "180396380815100901214157639"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := runCmd(t, tc.args...)
			require.Equal(t, exitOK, res.code, "stderr: %s", res.stderr)

			result, _ := outputLines(t, res.stdout)
			assert.Equal(t, tc.want, result)
		})
	}
}

// TestRun_EnvSelectsStrategy verifies environment values reach the run.
func TestRun_EnvSelectsStrategy(t *testing.T) {
	t.Setenv(config.EnvSteps, "3")
	t.Setenv(config.EnvStrategy, "big")

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())

	result, _ := outputLines(t, stdout.String())
	assert.Equal(t, "4", result)
}

// TestRun_Verbose verifies the log line goes to stderr and stdout keeps two lines.
func TestRun_Verbose(t *testing.T) {
	res := runCmd(t, "-v", "-n", "5", "-s", "table")

	require.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stderr, "stairs: strategy=table steps=5 elapsed=")

	result, _ := outputLines(t, res.stdout)
	assert.Equal(t, "13", result)
}

// TestRun_Help verifies --help prints usage and exits 0.
func TestRun_Help(t *testing.T) {
	res := runCmd(t, "--help")

	assert.Equal(t, exitOK, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "--strategy")
}

//
// -----------------------------------------------------------------------------
// Failures
// -----------------------------------------------------------------------------

// TestRun_UsageErrors verifies config and strategy errors exit 2 with nothing on stdout.
func TestRun_UsageErrors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantSub string
	}{
		{"unknown flag", []string{"--fast"}, "unknown flag"},
		{"negative steps", []string{"--steps=-1"}, "stairs: steps must be >= 0, got -1"},
		{"positional", []string{"30"}, "unexpected arguments"},
		{"unknown strategy", []string{"-s", "memo"}, `stairs: unknown strategy "memo"`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := runCmd(t, tc.args...)

			assert.Equal(t, exitUsage, res.code)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, tc.wantSub)
		})
	}
}

// TestRun_Overflow verifies a failing count exits 1 with nothing on stdout.
func TestRun_Overflow(t *testing.T) {
	res := runCmd(t, "-s", "table", "-n", "80")

	assert.Equal(t, exitCount, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "stairs: count for 80 steps overflows int64")
}

// TestRun_CounterErrorFromRegistry verifies errors from any registered counter are reported.
func TestRun_CounterErrorFromRegistry(t *testing.T) {
	boom := errors.New("boom")
	withRegistry(t, stairs.NewRegistry().Provide("naive", func(int) (string, error) {
		return "", boom
	}))

	res := runCmd(t)

	assert.Equal(t, exitCount, res.code)
	assert.Empty(t, res.stdout)
	assert.Equal(t, "boom\n", res.stderr)
}
