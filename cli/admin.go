package cli

import (
	"errors"
	"fmt"

	"food-picker/metrics"
	services "food-picker/service"

	"github.com/spf13/cobra"
)

func newAdminCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts.",
	}
	cmd.AddCommand(newCreateUserCommand(deps, flags))
	return cmd
}

func newCreateUserCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an admin account in the database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(deps, flags)
			if err != nil {
				return err
			}
			defer log.Sync()

			if !cfg.Database.Enabled() {
				return errors.New("DATABASE_URL is required to create users")
			}
			users, closer, err := deps.OpenUsers(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			authService, err := services.NewAuthService(users, nil, metrics.New(), log)
			if err != nil {
				return err
			}
			user, err := authService.CreateUser(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d)\n", user.Username, user.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Admin username.")
	cmd.Flags().StringVar(&password, "password", "", "Admin password.")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
