package cli

import (
	"fmt"
	"io"
	"strings"

	"food-picker/metrics"
	"food-picker/models"
	services "food-picker/service"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type nearbyFlags struct {
	Lat     float64
	Lng     float64
	Radius  int
	Types   string
	Exclude string
	Format  string
}

func newNearbyCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	opts := &nearbyFlags{}

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "Pick a random restaurant around a coordinate.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := strings.ToLower(strings.TrimSpace(opts.Format))
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (expected json or yaml)", opts.Format)
			}

			cfg, log, err := bootstrap(deps, flags)
			if err != nil {
				return err
			}
			defer log.Sync()

			service := services.NewRestaurantService(deps.PlacesAPI(cfg, log), metrics.New(), log)
			resp, err := service.Nearby(cmd.Context(), models.NearbyParams{
				Lat:     opts.Lat,
				Lng:     opts.Lng,
				Radius:  opts.Radius,
				Types:   opts.Types,
				Exclude: opts.Exclude,
			})
			if err != nil {
				return err
			}
			return writePayload(cmd.OutOrStdout(), resp, format)
		},
	}

	cmd.Flags().Float64Var(&opts.Lat, "lat", 0, "Latitude.")
	cmd.Flags().Float64Var(&opts.Lng, "lng", 0, "Longitude.")
	cmd.Flags().IntVar(&opts.Radius, "radius", 0, "Search radius in meters (default 1500).")
	cmd.Flags().StringVar(&opts.Types, "types", "", "Comma-separated cuisine keywords.")
	cmd.Flags().StringVar(&opts.Exclude, "exclude", "", "Restaurant name to avoid picking.")
	cmd.Flags().StringVar(&opts.Format, "format", "json", "Output format: json or yaml.")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}

func writePayload(w io.Writer, payload interface{}, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return err
		}
		return enc.Close()
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
