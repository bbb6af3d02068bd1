package cli

import (
	"food-picker/di"

	"github.com/spf13/cobra"
)

func newServeCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(deps, flags)
			if err != nil {
				return err
			}
			defer log.Sync()

			container, err := di.NewContainer(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer container.Close()

			return container.PickerHttpServer.Start(cmd.Context())
		},
	}
}
