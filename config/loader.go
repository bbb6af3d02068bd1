package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables the deployment sets.
var envBindings = map[string]string{
	"app.environment":           "APP_ENVIRONMENT",
	"server.port":               "PORT",
	"server.shutdown_timeout":   "SHUTDOWN_TIMEOUT",
	"places.api_key":            "FOURSQUARE_API_KEY",
	"places.base_url":           "FOURSQUARE_BASE_URL",
	"database.url":              "DATABASE_URL",
	"redis.address":             "REDIS_ADDRESS",
	"redis.password":            "REDIS_PASSWORD",
	"redis.db":                  "REDIS_DB",
	"auth.session_secret":       "SESSION_SECRET",
	"auth.admin_username":       "ADMIN_USERNAME",
	"auth.admin_password":       "ADMIN_PASSWORD",
	"auth.secure_cookie":        "SECURE_COOKIE",
	"limits.nearby_per_minute":  "RATE_LIMIT_NEARBY",
	"limits.comment_per_minute": "RATE_LIMIT_COMMENTS",
	"limits.login_per_minute":   "RATE_LIMIT_LOGIN",
	"logging.level":             "LOG_LEVEL",
	"logging.format":            "LOG_FORMAT",
}

// Load reads .env (if any), an optional YAML config file and the environment.
// configFile may be empty, in which case config.yaml is looked up in the
// working directory and ./configs.
func Load(configFile string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Places.APIKey = strings.TrimSpace(cfg.Places.APIKey)
	cfg.Auth.AdminUsername = strings.TrimSpace(cfg.Auth.AdminUsername)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.environment", "development")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("places.base_url", FOURSQUARE_ENDPOINT_BASE)
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.secure_cookie", false)
	v.SetDefault("limits.nearby_per_minute", 10)
	v.SetDefault("limits.comment_per_minute", 5)
	v.SetDefault("limits.login_per_minute", 5)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	if cfg.Limits.NearbyPerMinute <= 0 || cfg.Limits.CommentPerMinute <= 0 || cfg.Limits.LoginPerMinute <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	if (cfg.Auth.AdminUsername == "") != (cfg.Auth.AdminPassword == "") {
		return fmt.Errorf("auth.admin_username and auth.admin_password must be set together")
	}
	return nil
}

// loadEnvFile loads the first .env found between the working directory and
// the module root. A missing file is not an error.
func loadEnvFile() {
	candidates := []string{".env"}
	if root := BaseDir(); root != "" {
		candidates = append(candidates, filepath.Join(root, ".env"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}
