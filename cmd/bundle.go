package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var bundleOutFlag string

// bundleCmd represents the bundle command.
var bundleCmd = newBundleCmd()

func newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle <dir>",
		Short: "Bundle a library directory into a tree snapshot",
		Long: `Walk a library directory and write every .zph and .zasm file into a
snapshot usable with --snapshot. Module paths are the file paths relative to
the directory without their extension.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			snapshot, err := sourceTrees.Bundle(ctx, absPath(args[0]))
			if err != nil {
				return err
			}

			if err := sourceTrees.SaveSnapshot(ctx, absPath(bundleOutFlag), snapshot); err != nil {
				return err
			}

			slog.Info("Bundled snapshot", "dir", args[0], "out", bundleOutFlag, "modules", len(snapshot.Modules))
			cmd.Printf("wrote %d modules to %s\n", len(snapshot.Modules), bundleOutFlag)

			return nil
		},
	}

	cmd.Flags().StringVarP(&bundleOutFlag, bundleOutFlagName, "o", defaultBundleOutFile, "snapshot file to write")

	return cmd
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}
