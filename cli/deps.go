package cli

import (
	"context"
	"io"

	"food-picker/api/foursquare"
	"food-picker/config"
	"food-picker/dao/postgres"
	"food-picker/di"
	"food-picker/logger"
	services "food-picker/service"

	"go.uber.org/zap"
)

// Dependencies lets tests replace the pieces that touch the outside world.
type Dependencies struct {
	LoadConfig func(path string) (*config.Config, error)
	NewLogger  func(cfg *config.Config) (*zap.Logger, error)
	PlacesAPI  func(cfg *config.Config, log *zap.Logger) foursquare.PlacesAPI
	OpenUsers  func(ctx context.Context, cfg *config.Config) (services.UserStore, io.Closer, error)
}

func DefaultDependencies() Dependencies {
	return Dependencies{
		LoadConfig: config.Load,
		NewLogger: func(cfg *config.Config) (*zap.Logger, error) {
			return logger.New(cfg.Logging.Level, cfg.Logging.Format)
		},
		PlacesAPI: di.NewPlacesAPI,
		OpenUsers: func(ctx context.Context, cfg *config.Config) (services.UserStore, io.Closer, error) {
			conn, err := di.OpenDatabase(ctx, cfg)
			if err != nil {
				return nil, nil, err
			}
			return postgres.NewUserDAO(conn), conn, nil
		},
	}
}
