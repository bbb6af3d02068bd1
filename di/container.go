package di

import (
	"context"
	"database/sql"
	"fmt"

	"food-picker/api"
	"food-picker/api/foursquare"
	"food-picker/auth"
	"food-picker/config"
	"food-picker/dao/postgres"
	"food-picker/dao/redis"
	"food-picker/db"
	"food-picker/metrics"
	"food-picker/server"
	"food-picker/server/handlers"
	services "food-picker/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config            *config.Config
	Logger            *zap.Logger
	Metrics           *metrics.Metrics
	RedisClient       db.RedisClient
	DB                *sql.DB
	PlacesAPI         foursquare.PlacesAPI
	SessionDAO        *redis.RedisSessionDAO
	SessionManager    *auth.SessionManager
	RestaurantService *services.RestaurantService
	CommentService    *services.CommentService
	AuthService       *services.AuthService
	FoodService       *services.FoodService
	MuxRouter         *mux.Router
	Router            *server.Router
	PickerHttpServer  *server.PickerHttpServer
}

// NewContainer initializes and wires up all dependencies. Optional backends
// fall back as follows: no API key serves the bundled fixture, no Redis
// address keeps sessions in memory, no database disables comment storage.
func NewContainer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	log.Info("initializing container", zap.String("env", cfg.App.Environment))
	c := &Container{Config: cfg, Logger: log, Metrics: metrics.New()}

	c.PlacesAPI = NewPlacesAPI(cfg, log)

	if cfg.Redis.Enabled() {
		redisClient, err := db.DialRedis(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = redisClient
		log.Info("using redis session store", zap.String("addr", cfg.Redis.Address))
	} else {
		c.RedisClient = db.NewMemoryRedisClient()
		log.Info("using in-memory session store")
	}

	var commentStore services.CommentStore
	var userStore services.UserStore
	if cfg.Database.Enabled() {
		conn, err := OpenDatabase(ctx, cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.DB = conn
		commentStore = postgres.NewCommentDAO(conn)
		userStore = postgres.NewUserDAO(conn)
	} else {
		log.Warn("DATABASE_URL not set, comments and admin login are disabled")
	}

	secret := cfg.Auth.SessionSecret
	if secret == "" {
		generated, err := auth.GenerateSecret()
		if err != nil {
			c.Close()
			return nil, err
		}
		secret = generated
		log.Warn("SESSION_SECRET not set, using a random per-process secret; sessions will not survive restarts")
	}

	c.SessionDAO = redis.NewRedisSessionDAO(c.RedisClient, config.SESSION_TTL)
	c.SessionManager = auth.NewSessionManager(c.SessionDAO, []byte(secret), config.SESSION_TTL, cfg.Auth.SecureCookie)

	c.RestaurantService = services.NewRestaurantService(c.PlacesAPI, c.Metrics, log)
	c.CommentService = services.NewCommentService(commentStore, c.Metrics, log)
	c.FoodService = services.NewFoodService()
	authService, err := services.NewAuthService(userStore, c.SessionManager, c.Metrics, log)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.AuthService = authService

	if err := c.AuthService.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		c.Close()
		return nil, err
	}

	restaurantHandler := handlers.NewRestaurantHandler(c.RestaurantService, c.FoodService, log)
	commentHandler := handlers.NewCommentHandler(c.CommentService, log)
	adminHandler := handlers.NewAdminHandler(c.AuthService, c.SessionManager, c.CommentService, log)
	healthHandler := handlers.NewHealthHandler()

	c.MuxRouter = mux.NewRouter()
	c.Router = server.NewRouter(restaurantHandler, commentHandler, adminHandler, healthHandler,
		c.SessionManager, cfg.Limits, c.Metrics, log, c.MuxRouter)
	c.PickerHttpServer = server.NewPickerHttpServer(c.Router, c.MuxRouter, cfg.Server, log)

	return c, nil
}

// NewPlacesAPI returns the live Foursquare client, or the fixture-backed mock
// when no API key is configured.
func NewPlacesAPI(cfg *config.Config, log *zap.Logger) foursquare.PlacesAPI {
	if cfg.Places.APIKey == "" {
		log.Warn("FOURSQUARE_API_KEY not set, serving places from the bundled fixture")
		return foursquare.NewPlacesAPIClientMock()
	}
	httpClient := api.NewHTTPClient(cfg.Places.BaseURL, config.FOURSQUARE_HTTP_TIMEOUT)
	return foursquare.NewPlacesAPIClient(httpClient, cfg.Places.APIKey, log)
}

// OpenDatabase connects to Postgres and creates the tables if needed.
func OpenDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	conn, err := db.OpenPostgres(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Close releases the database and Redis connections.
func (c *Container) Close() error {
	var firstErr error
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			firstErr = err
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
