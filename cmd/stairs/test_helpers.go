// test_helpers.go
package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sghaida/stairs/config"
	"github.com/sghaida/stairs/stairs"
	"github.com/stretchr/testify/require"
)

// runResult captures one invocation of run.
type runResult struct {
	code   int
	stdout string
	stderr string
}

// runCmd calls run with a clean environment and captures both streams.
func runCmd(t *testing.T, args ...string) runResult {
	t.Helper()

	t.Setenv(config.EnvSteps, "")
	t.Setenv(config.EnvStrategy, "")

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// outputLines splits stdout into its result and duration lines.
func outputLines(t *testing.T, stdout string) (string, time.Duration) {
	t.Helper()

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2, "stdout: %q", stdout)

	d, err := time.ParseDuration(lines[1])
	require.NoError(t, err, "duration line %q", lines[1])
	return lines[0], d
}

// withRegistry replaces the strategy registry used by run.
func withRegistry(t *testing.T, reg *stairs.Registry) {
	t.Helper()

	orig := registry
	t.Cleanup(func() { registry = orig })
	registry = func() *stairs.Registry { return reg }
}
