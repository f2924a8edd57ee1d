// Package config loads the settings of the stairs command.
//
// Values are layered: built-in defaults, then environment, then flags.
// With nothing set the command counts 30 steps with the naive strategy.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Defaults used when neither environment nor flags set a value.
const (
	DefaultSteps    = 30
	DefaultStrategy = "naive"
)

// Environment variables read by Load.
const (
	EnvSteps    = "STAIRS_STEPS"
	EnvStrategy = "STAIRS_STRATEGY"
)

// ErrHelp is returned by Load when -h or --help was requested.
var ErrHelp = pflag.ErrHelp

type Config struct {
	Steps    int
	Strategy string
	Verbose  bool
}

// lookupEnv is the environment source, overridden in tests.
var lookupEnv = os.Getenv

// Load builds a Config from the environment and args (without the program
// name), then validates it. Usage and parse errors are written to stderr.
func Load(args []string, stderr io.Writer) (Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}

	flags := pflag.NewFlagSet("stairs", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVarP(&cfg.Steps, "steps", "n", cfg.Steps, "number of steps to climb (env "+EnvSteps+")")
	flags.StringVarP(&cfg.Strategy, "strategy", "s", cfg.Strategy, "counting strategy: naive, table or big (env "+EnvStrategy+")")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log the run to stderr")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, ErrHelp
		}
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot reject while parsing.
func (c Config) Validate() error {
	if c.Steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", c.Steps)
	}
	if strings.TrimSpace(c.Strategy) == "" {
		return errors.New("strategy must not be empty")
	}
	return nil
}

func fromEnv() (Config, error) {
	steps, err := getenvInt(EnvSteps, DefaultSteps)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Steps:    steps,
		Strategy: getenv(EnvStrategy, DefaultStrategy),
	}, nil
}

func getenv(k, def string) string {
	if v := lookupEnv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) (int, error) {
	v := lookupEnv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
