package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCallCommand creates the call command.
func NewCallCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <name> [args...]",
		Short: "Call any registered function by name",
		Long: `Call a registered function by name.

Each argument is read as JSON when it parses (3, 0.5, true, [1,2]) and as a
plain string otherwise. Run "getkit list" for the available names.

Examples:
  getkit call gcd 48 18
  getkit call intervals '[0,0]' '[2,4]' 1
  getkit call base FF 16 2`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(rootOpts, cmd, args[0], parseArgs(args[1:]))
		},
	}
	return cmd
}

// NewMeasureCommand creates the measure command.
func NewMeasureCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure <name> [args...]",
		Short: "Time a call to a registered function",
		Long: `Time a call to a registered function and print the elapsed milliseconds
with the result. Arguments are read as in "getkit call".

A "perf" record is logged at info level unless GETKIT_MEASURE_LOG=false.

Example:
  getkit measure fraction 0.333 3 -v`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs := append([]any{args[0]}, parseArgs(args[1:])...)
			return runCall(rootOpts, cmd, "measure", callArgs)
		},
	}
	return cmd
}

// runCall invokes name on a fresh builtin registry and reports the outcome.
func runCall(opts *RootOptions, cmd *cobra.Command, name string, args []any) error {
	f := opts.formatter(cmd)

	reg, err := opts.newRegistry()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build registry", err)
	}

	f.VerboseLog("call %s %s", name, renderText(args))
	opts.logger().Debug("call", "name", name, "args", len(args))

	value, err := reg.Call(name, args...)
	if err != nil {
		if ferr := f.Error(ErrorCode(err), err.Error(), nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitFailure, fmt.Sprintf("%s failed", name), err)
	}
	return f.Success(value)
}

// parseArgs reads each argument as JSON, falling back to the raw string.
func parseArgs(raw []string) []any {
	out := make([]any, len(raw))
	for i, s := range raw {
		out[i] = parseArg(s)
	}
	return out
}

func parseArg(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return s
	}
	return v
}

// stringArgs passes arguments through unparsed, so integers reach the
// registry as decimal text: "010" is ten and wide numerals keep every digit.
func stringArgs(raw []string) []any {
	out := make([]any, len(raw))
	for i, s := range raw {
		out[i] = s
	}
	return out
}
