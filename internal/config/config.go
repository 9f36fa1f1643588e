// Package config turns command-line arguments and environment variables into
// the CLI configuration. Flags win over environment variables, which win
// over built-in defaults. A .env file in the working directory is loaded
// into the environment first when present.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/pipemaze/solver"
)

// Environment variables recognised as defaults.
const (
	EnvLogLevel  = "PIPEMAZE_LOG_LEVEL"
	EnvLogFormat = "PIPEMAZE_LOG_FORMAT"
	EnvWorkers   = "PIPEMAZE_WORKERS"
	EnvMethod    = "PIPEMAZE_METHOD"
)

// ExitError carries the process exit code for a configuration failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated CLI configuration.
type Config struct {
	// InputPath is a single grid file; empty when ManifestPath is used.
	InputPath string
	// ManifestPath is an HCL batch manifest.
	ManifestPath string
	// RenderPath, if set, receives a PNG of the single grid.
	RenderPath string
	Method     solver.Method
	Workers    int
	LogFormat  string
	LogLevel   string
}

// Load reads an optional .env file and parses args against the process environment.
func Load(args []string, output io.Writer) (*Config, bool, error) {
	_ = godotenv.Load()

	return Parse(args, output, os.Getenv)
}

// Parse processes command-line arguments with getenv supplying defaults.
// It returns the Config, whether the program should exit cleanly (help or
// no input), or an *ExitError with code 2.
func Parse(args []string, output io.Writer, getenv func(string) string) (*Config, bool, error) {
	fs := flag.NewFlagSet("pipemaze", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
pipemaze - measures the closed pipe loop of a pipe maze grid.

Usage:
  pipemaze [options] GRID_FILE
  pipemaze [options] -manifest BATCH.hcl

Options:
`)
		fs.PrintDefaults()
	}

	manifestFlag := fs.String("manifest", "", "Path to an HCL batch manifest.")
	renderFlag := fs.String("render", "", "Write a PNG of the solved grid to this path (single grid only).")
	methodFlag := fs.String("method", envOr(getenv, EnvMethod, "shoelace"), "Containment method: 'shoelace' or 'scanline'.")
	workersFlag := fs.String("workers", envOr(getenv, EnvWorkers, strconv.Itoa(runtime.NumCPU())), "Number of grids solved concurrently.")
	logFormatFlag := fs.String("log-format", envOr(getenv, EnvLogFormat, "text"), "Log output format: 'text' or 'json'.")
	logLevelFlag := fs.String("log-level", envOr(getenv, EnvLogLevel, "warn"), "Logging level: 'debug', 'info', 'warn', 'error'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{
		ManifestPath: *manifestFlag,
		RenderPath:   *renderFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	}
	if fs.NArg() > 0 {
		cfg.InputPath = fs.Arg(0)
	}
	if cfg.InputPath == "" && cfg.ManifestPath == "" {
		fs.Usage()
		return nil, true, nil
	}
	if cfg.InputPath != "" && cfg.ManifestPath != "" {
		return nil, false, &ExitError{Code: 2, Message: "give either GRID_FILE or -manifest, not both"}
	}
	if cfg.RenderPath != "" && cfg.ManifestPath != "" {
		return nil, false, &ExitError{Code: 2, Message: "-render applies to a single grid; use render in the manifest instead"}
	}

	m, err := solver.ParseMethod(*methodFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg.Method = m

	n, err := strconv.Atoi(strings.TrimSpace(*workersFlag))
	if err != nil || n < 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid workers %q: must be a positive integer", *workersFlag)}
	}
	cfg.Workers = n

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return cfg, false, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}

	return fallback
}
