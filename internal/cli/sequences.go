package cli

import (
	"github.com/spf13/cobra"
)

// IntervalsOptions holds flags for the intervals command.
type IntervalsOptions struct {
	*RootOptions
	Steps   int
	NoEdges bool
}

// NewIntervalsCommand creates the intervals command.
func NewIntervalsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IntervalsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "intervals <a> <b>",
		Short: "Evenly spaced values between two numbers or vectors",
		Long: `Print steps evenly spaced values between a and b, plus a and b themselves
unless --no-edges is set. Comma-separated arguments are vectors of equal
length and are interpolated component-wise.

Examples:
  getkit intervals 0 10                 # [0,5,10]
  getkit intervals 0 10 --steps 3 --no-edges
  getkit intervals 0,0 2,4`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(opts.RootOptions, cmd, "intervals",
				[]any{args[0], args[1], opts.Steps, !opts.NoEdges})
		},
	}

	cmd.Flags().IntVar(&opts.Steps, "steps", 1, "number of interior values")
	cmd.Flags().BoolVar(&opts.NoEdges, "no-edges", false, "omit a and b from the output")

	return cmd
}

// NewPatternCommand creates the pattern command.
func NewPatternCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pattern <length> <item>...",
		Short: "Repeat items cyclically to a given length",
		Long: `Print a list of the given length cycling through the items.

Example:
  getkit pattern 5 1 2                  # [1,2,1,2,1]`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(rootOpts, cmd, "pattern", parseArgs(args))
		},
	}
}

// NewUniqueCommand creates the unique command.
func NewUniqueCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unique <item>...",
		Short: "Remove repeated items, keeping first occurrences",
		Long: `Print the items with repeats removed, in first-occurrence order.

Example:
  getkit unique 3 1 3 2 1               # [3,1,2]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(rootOpts, cmd, "unique", parseArgs(args))
		},
	}
}

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "normalize <text>",
		Short:         "Strip diacritical marks from text",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(rootOpts, cmd, "normalize", stringArgs(args))
		},
	}
}

// NewTimeCommand creates the time command.
func NewTimeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "time",
		Short:         "Current [hours, minutes, seconds, milliseconds]",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(rootOpts, cmd, "time", nil)
		},
	}
}
