package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// FunctionInfo describes one registered function in list output.
type FunctionInfo struct {
	Name  string `json:"name"`
	Usage string `json:"usage"`
	Doc   string `json:"doc"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List the functions available to call",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	reg, err := opts.newRegistry()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build registry", err)
	}

	entries := reg.Entries()
	infos := make([]FunctionInfo, len(entries))
	for i, e := range entries {
		infos[i] = FunctionInfo{Name: e.Name, Usage: e.Usage, Doc: e.Doc}
	}

	if opts.Format == "json" {
		return opts.formatter(cmd).Success(infos)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(tw, "%s %s\t%s\n", info.Name, info.Usage, info.Doc)
	}
	return tw.Flush()
}
