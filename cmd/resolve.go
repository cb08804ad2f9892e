package cmd

import (
	"github.com/spf13/cobra"

	"zephyr.dev/pkg/playground/internal/domain"
)

var resolveFileFlag string

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <root> <path>",
		Short: "Show what a module reference resolves to",
		Long: `Resolve a single module reference the way the compiler would and print
the files it maps to. The playground entry module resolves to --file, or to
the built-in example program.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if resolveFileFlag != "" {
				files = []string{resolveFileFlag}
			}

			buffer, err := readSource(cmd.Context(), files)
			if err != nil {
				return err
			}

			_, err = playground.Resolve(cmd.Context(), domain.ResolveArgs{
				Root:   args[0],
				Path:   args[1],
				Buffer: buffer,
			})

			return err
		},
	}

	cmd.Flags().StringVarP(&resolveFileFlag, "file", "f", "", "source served as the playground entry module")

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
