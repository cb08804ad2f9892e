package cmd

import (
	"github.com/spf13/cobra"

	"zephyr.dev/pkg/playground/internal/domain"
)

const runLongDescription = `Compile a Zephyr source file with the configured toolchain and run it.

The file is served to the compiler as the playground entry module
(playground/main by default); every other import is resolved against the
virtual source tree. When the binary exports exactly one function it is
called and its result is printed, otherwise the exports are listed.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "run [file]",
		Short:         "Compile and run a Zephyr program",
		Long:          runLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			buffer, err := readSource(cmd.Context(), args)
			if err != nil {
				cmd.PrintErrln("Error:", err)
				return err
			}

			// Failures are already on the console transcript.
			return playground.Run(cmd.Context(), domain.RunArgs{Buffer: buffer})
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
