package config

import (
	"os"
	"path/filepath"
	"time"
)

// Foursquare Places API
const FOURSQUARE_ENDPOINT_BASE = "https://places-api.foursquare.com"
const FOURSQUARE_API_VERSION = "2025-06-17"

// 13065 is the "Dining and Drinking > Restaurant" category.
const FOURSQUARE_RESTAURANT_CATEGORY = "13065"
const FOURSQUARE_SEARCH_LIMIT = 50
const FOURSQUARE_SEARCH_FIELDS = "name,categories,location,website,distance"
const FOURSQUARE_HTTP_TIMEOUT = 10 * time.Second

// Nearby lookup defaults
const DEFAULT_SEARCH_RADIUS_METERS = 1500

// Comments
const COMMENT_NAME_MAX_LEN = 100
const COMMENT_MESSAGE_MAX_LEN = 1000
const COMMENT_DEFAULT_NAME = "Anonymous"

// Admin sessions
const SESSION_COOKIE_NAME = "food_picker_session"
const SESSION_TTL = 24 * time.Hour

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACES_SEARCH_RESPONSE_RESOURCE = "places_search_response.json"

// Config is the runtime configuration, assembled by Load.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Places   PlacesConfig   `mapstructure:"places"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PlacesConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig holds the Postgres connection string. An empty URL disables
// comment and admin persistence.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// RedisConfig points at the session store. An empty address keeps sessions
// in process memory.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type AuthConfig struct {
	SessionSecret string `mapstructure:"session_secret"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
	SecureCookie  bool   `mapstructure:"secure_cookie"`
}

// LimitsConfig holds per-client-IP request budgets per minute.
type LimitsConfig struct {
	NearbyPerMinute  int `mapstructure:"nearby_per_minute"`
	CommentPerMinute int `mapstructure:"comment_per_minute"`
	LoginPerMinute   int `mapstructure:"login_per_minute"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	// tests run from the package directory, walk up to the module root
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd
		}
		dir = parent
	}
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
