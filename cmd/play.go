package cmd

import (
	"github.com/spf13/cobra"

	"zephyr.dev/pkg/playground/internal/domain"
)

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [file]",
		Short: "Open the interactive playground",
		Long: `Open an editor seeded with the file (or the built-in example program) next
to the console. ctrl+r compiles and runs the buffer, ctrl+l clears the
console, esc quits.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			buffer, err := readSource(cmd.Context(), args)
			if err != nil {
				return err
			}

			return playground.Play(cmd.Context(), domain.PlayArgs{Buffer: buffer})
		},
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
}
