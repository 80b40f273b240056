package cli

import (
	"github.com/spf13/cobra"
)

// FractionOptions holds flags for the fraction command.
type FractionOptions struct {
	*RootOptions
	Repeating  int
	NoSimplify bool
}

// NewFractionCommand creates the fraction command.
func NewFractionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FractionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fraction <decimal>",
		Short: "Convert a decimal to an exact fraction",
		Long: `Convert a decimal to numerator/denominator.

With --repeating N the last N decimal digits repeat forever. The input is
read as written, so "2.50" keeps its trailing zero when --no-simplify is set.

Examples:
  getkit fraction 0.25                  # 1/4
  getkit fraction 0.13 --repeating 1    # 2/15
  getkit fraction 2.50 --no-simplify    # 250/100`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(opts.RootOptions, cmd, "fraction",
				[]any{args[0], opts.Repeating, !opts.NoSimplify})
		},
	}

	cmd.Flags().IntVarP(&opts.Repeating, "repeating", "r", 0, "number of trailing repeating digits")
	cmd.Flags().BoolVar(&opts.NoSimplify, "no-simplify", false, "keep the unreduced fraction")

	return cmd
}

// BaseOptions holds flags for the base command.
type BaseOptions struct {
	*RootOptions
	From int
	To   int
}

// NewBaseCommand creates the base command.
func NewBaseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BaseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "base <value>",
		Short: "Convert a numeral between bases",
		Long: `Convert a non-negative numeral between bases 2 and 36 (digits 0-9, A-Z,
case-insensitive). Base 64 encodes (--to 64) or decodes (--from 64) the
value's bytes as standard padded base64.

Examples:
  getkit base FF --from 16              # 255
  getkit base 255 --to 2                # 11111111
  getkit base hi --to 64                # aGk=`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(opts.RootOptions, cmd, "base", []any{args[0], opts.From, opts.To})
		},
	}

	cmd.Flags().IntVar(&opts.From, "from", 10, "source base (2-36 or 64)")
	cmd.Flags().IntVar(&opts.To, "to", 10, "target base (2-36 or 64)")

	return cmd
}

// NewGCDCommand creates the gcd command.
func NewGCDCommand(rootOpts *RootOptions) *cobra.Command {
	return pairCommand(rootOpts, "gcd", "Greatest common divisor of two integers")
}

// NewLCMCommand creates the lcm command.
func NewLCMCommand(rootOpts *RootOptions) *cobra.Command {
	return pairCommand(rootOpts, "lcm", "Least common multiple of two integers")
}

func pairCommand(rootOpts *RootOptions, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:           name + " <a> <b>",
		Short:         short,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(rootOpts, cmd, name, stringArgs(args))
		},
	}
}

// NewDecimalsCommand creates the decimals command.
func NewDecimalsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "decimals <number>",
		Short:         "Count the digits after the decimal point",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(rootOpts, cmd, "decimals", stringArgs(args))
		},
	}
}

// NewRandomCommand creates the random command.
func NewRandomCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "random <max> | <min> <max>",
		Short: "Random integer in an inclusive range",
		Long: `Print a random integer in [min, max]; min defaults to 0.

Use the global --seed flag (or GETKIT_SEED) for a reproducible draw.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(rootOpts, cmd, "random", stringArgs(args))
		},
	}
}
