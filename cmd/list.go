package cmd

import (
	"github.com/spf13/cobra"

	"zephyr.dev/pkg/playground/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "list [root]",
		Short:        "List the modules of the virtual source tree",
		Long:         "List every module path that resolves in the virtual source tree, optionally restricted to one root.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var root string
			if len(args) == 1 {
				root = args[0]
			}

			_, err := playground.Modules(cmd.Context(), domain.ListArgs{Root: root})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
