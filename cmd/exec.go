package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zephyr.dev/pkg/playground/internal/domain"
	m "zephyr.dev/pkg/playground/internal/model"
)

// execCmd represents the exec command.
var execCmd = newExecCmd()

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "exec <binary.wasm>",
		Short:         "Run a prebuilt WebAssembly binary",
		Long:          "Instantiate a compiled binary in the sandbox and run it the same way run does after compiling.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			binary, err := sourceTrees.ReadFile(cmd.Context(), absPath(args[0]))
			if err != nil {
				err = fmt.Errorf("failed to read %s: %w", args[0], err)
				cmd.PrintErrln("Error:", err)

				return err
			}

			return playground.Exec(cmd.Context(), domain.ExecArgs{Binary: m.Binary(binary)})
		},
	}
}

func init() {
	rootCmd.AddCommand(execCmd)
}
