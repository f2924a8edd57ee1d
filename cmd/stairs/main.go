// cmd/stairs/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sghaida/stairs/config"
	"github.com/sghaida/stairs/stairs"
)

// Exit codes returned by run.
const (
	exitOK    = 0
	exitCount = 1
	exitUsage = 2
)

// outcome is what one counter call produced.
type outcome struct {
	value string
	err   error
}

// registry is the strategy source, overridden in tests.
var registry = stairs.DefaultRegistry

// run executes one timed count and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	// Errors from the stairs package carry their own "stairs: " prefix.
	logger := log.New(stderr, "", 0)

	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return exitOK
		}
		logger.Printf("stairs: %v", err)
		return exitUsage
	}

	count, err := registry().Resolve(cfg.Strategy)
	if err != nil {
		logger.Println(err)
		return exitUsage
	}

	res, elapsed := stairs.Timed(func() outcome {
		v, err := count(cfg.Steps)
		return outcome{value: v, err: err}
	})
	if res.err != nil {
		logger.Println(res.err)
		return exitCount
	}

	if cfg.Verbose {
		logger.Printf("stairs: strategy=%s steps=%d elapsed=%s", cfg.Strategy, cfg.Steps, elapsed)
	}

	_, _ = fmt.Fprintln(stdout, res.value)
	_, _ = fmt.Fprintln(stdout, elapsed)
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
