package cli

import (
	"context"
	"fmt"
	"os"

	"food-picker/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type globalFlags struct {
	ConfigFile string
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "food-picker",
		Short:         "Pick a random nearby restaurant and moderate the feedback box.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file.")

	root.AddCommand(newServeCommand(deps, flags))
	root.AddCommand(newNearbyCommand(deps, flags))
	root.AddCommand(newAdminCommand(deps, flags))
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCommand(DefaultDependencies())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// bootstrap loads configuration and builds the logger for a command.
func bootstrap(deps Dependencies, flags *globalFlags) (*config.Config, *zap.Logger, error) {
	cfg, err := deps.LoadConfig(flags.ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := deps.NewLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}
