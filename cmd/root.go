// Package cmd provides the root command and CLI setup for the Zephyr playground.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"zephyr.dev/pkg/playground/internal/adapter"
	"zephyr.dev/pkg/playground/internal/controller"
	"zephyr.dev/pkg/playground/internal/domain"
	m "zephyr.dev/pkg/playground/internal/model"
)

var sourceTrees adapter.SourceTreeAdapter
var toolchain *adapter.ToolchainLoader
var sandbox adapter.Sandbox
var console *domain.Console
var ui controller.UI

// playground is built on first use so it sees the parsed flags and config.
var playground domain.Playground

var verboseFlag bool
var snapshotFlag string
var toolchainFlag string

func init() {
	configureRootFlags(rootCmd)
	rootCmd.PersistentPreRunE = prepareSession

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceTrees = adapter.NewLocalSourceTreeAdapter()
	toolchain = adapter.NewToolchainLoader(sourceTrees, func() m.Path {
		return absPath(viper.GetString(toolchainConfigKey))
	})
	sandbox = adapter.NewWazeroSandbox()
	console = domain.NewConsole()
}

const rootLongDescription = `Playground hosts the Zephyr compiler toolchain: it resolves module imports
against a virtual source tree, compiles the editor buffer to WebAssembly and
runs the result in a sandbox, keeping a console transcript of what happened.

Without a source file the built-in example program is used.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "playground",
		Short: "Zephyr language playground",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&snapshotFlag, snapshotFlagName, viper.GetString(snapshotConfigKey), "virtual tree snapshot (default: embedded standard library)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(snapshotFlagName), snapshotConfigKey)

	cmd.PersistentFlags().StringVarP(&toolchainFlag, toolchainFlagName, "t", viper.GetString(toolchainConfigKey), "path to the toolchain .wasm")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(toolchainFlagName), toolchainConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func prepareSession(_ *cobra.Command, _ []string) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if configErr != nil {
		slog.Warn("Ignoring config file", "error", configErr)
	}

	if playground == nil {
		playground = newPlayground()
	}

	return nil
}

func newPlayground() domain.Playground {
	cfg := domain.PlaygroundConfig{
		Snapshot: absPath(viper.GetString(snapshotConfigKey)),
		Resolver: domain.ResolverConfig{
			PlaygroundRoot: viper.GetString(playgroundRootKey),
			EntryName:      viper.GetString(playgroundEntryKey),
		},
	}

	slog.Debug("Playground configured", "snapshot", cfg.Snapshot, "root", cfg.Resolver.PlaygroundRoot, "entry", cfg.Resolver.EntryName)

	return domain.NewPlayground(cfg, sourceTrees, toolchain, sandbox, console, ui)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	if toolchain != nil {
		if closeErr := toolchain.Close(ctx); closeErr != nil {
			slog.Warn("Failed to close toolchain", "error", closeErr)
		}
	}

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// absPath makes a user supplied path absolute; the filesystem adapter is rooted at /.
func absPath(path string) m.Path {
	if path == "" {
		return ""
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return m.Path(path)
	}

	return m.Path(abs)
}

func readSource(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return domain.ExampleBuffer, nil
	}

	data, err := sourceTrees.ReadFile(ctx, absPath(args[0]))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	return string(data), nil
}
