package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/getkit/internal/config"
	"github.com/roach88/getkit/internal/random"
	"github.com/roach88/getkit/internal/registry"
	"github.com/roach88/getkit/internal/timing"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Seed    int64  // 0 means a fresh crypto seed

	// Config is the environment configuration flags default to.
	Config *config.Config

	// Logger is built in PersistentPreRunE from Config and Verbose.
	Logger *slog.Logger

	// Clock overrides the system clock; tests pin it.
	Clock timing.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// fallbackConfig is used for flag defaults when the environment is invalid;
// the error itself is reported before any command runs.
var fallbackConfig = config.Config{
	Format:     "text",
	LogLevel:   "warn",
	LogFormat:  "text",
	MeasureLog: true,
}

// NewRootCommand creates the root command for the getkit CLI.
func NewRootCommand() *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		fallback := fallbackConfig
		cfg = &fallback
	}
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "getkit",
		Short: "getkit - numeric and string utilities",
		Long: `Exact decimal-to-fraction conversion, base conversion between bases 2-36
and base 64, and small numeric, sequence and text helpers.

Defaults for the global flags come from GETKIT_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", cfgErr).WithErrCode(ErrCodeConfig)
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Config, opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().Int64Var(&opts.Seed, "seed", cfg.Seed, "random seed (0 = crypto seed)")

	cmd.AddCommand(NewFractionCommand(opts))
	cmd.AddCommand(NewBaseCommand(opts))
	cmd.AddCommand(NewGCDCommand(opts))
	cmd.AddCommand(NewLCMCommand(opts))
	cmd.AddCommand(NewIntervalsCommand(opts))
	cmd.AddCommand(NewPatternCommand(opts))
	cmd.AddCommand(NewUniqueCommand(opts))
	cmd.AddCommand(NewDecimalsCommand(opts))
	cmd.AddCommand(NewRandomCommand(opts))
	cmd.AddCommand(NewNormalizeCommand(opts))
	cmd.AddCommand(NewTimeCommand(opts))
	cmd.AddCommand(NewCallCommand(opts))
	cmd.AddCommand(NewMeasureCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors already reported through an OutputFormatter are not printed again;
// errors cobra raises itself (unknown command, wrong arg count) are command
// errors.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		err = WrapExitError(ExitCommandError, "usage", err)
		errors.As(err, &exitErr)
	}
	if exitErr.Code == ExitCommandError {
		code := exitErr.ErrCode
		if code == "" {
			code = ErrCodeGeneric
		}
		fmt.Fprintf(stderr, "Error [%s]: %v\n", code, err)
	}
	return GetExitCode(err)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// newLogger builds the stderr logger. Verbose forces debug level.
func newLogger(w io.Writer, cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// formatter returns an OutputFormatter bound to cmd's writers.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// logger returns the configured logger, or a discarding one when a
// subcommand runs without the root's PersistentPreRunE (tests).
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// newRegistry builds the builtin registry for one command invocation.
func (o *RootOptions) newRegistry() (*registry.Registry, error) {
	var gen *random.Generator
	if o.Seed != 0 {
		gen = random.NewSeeded(o.Seed)
	}
	measureLog := true
	if o.Config != nil {
		measureLog = o.Config.MeasureLog
	}
	return registry.Builtin(registry.Deps{
		Random:     gen,
		Clock:      o.Clock,
		Logger:     o.logger(),
		MeasureLog: measureLog,
	})
}
