// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types, and validates
// that required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults so a local run needs no configuration at all.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// the process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix TODO_. The prefix is dropped, keys
	are lowercased and a double underscore separates nesting levels:

	  TODO_SERVER__PORT          -> server.port          -> Config.Server.Port
	  TODO_DATABASE__SSL_MODE    -> database.ssl_mode    -> Config.Database.SSLMode
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "TODO_"

// ServiceName identifies this service in logs and APM dashboards.
const ServiceName = "todo-api"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are used by go-playground/validator
// to enforce that the config is present and populated.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	// Observability is decoded separately in LoadConfig, merged over
	// DefaultObservabilityConfig.
	Observability *ObservabilityConfig `koanf:"-"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and to switch behavior (SQL logging, migrations) per env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// Password is optional: local trust-auth setups connect without one.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns        int32  `koanf:"max_conns" validate:"required,min=1"`
	MinConns        int32  `koanf:"min_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// defaults mirrors the reference deployment: a local PostgreSQL holding
// `todo_database` and an API listening on port 5000.
var defaults = map[string]any{
	"primary.env": "development",

	"server.port":                 "5000",
	"server.read_timeout":         30,
	"server.write_timeout":        30,
	"server.idle_timeout":         60,
	"server.cors_allowed_origins": []string{"*"},

	"database.host":               "localhost",
	"database.port":               5432,
	"database.user":               "postgres",
	"database.password":           "",
	"database.name":               "todo_database",
	"database.ssl_mode":           "disable",
	"database.max_conns":          10,
	"database.min_conns":          0,
	"database.conn_max_lifetime":  3600,
	"database.conn_max_idle_time": 1800,
}

// envKey turns TODO_DATABASE__SSL_MODE into database.ssl_mode.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and fills the observability block.
//
// Behavior summary:
//   - Loads built-in defaults, then env vars with prefix TODO_ on top
//   - Unmarshals into Config and validates struct tags
//   - Sets default observability if missing
//   - Overrides observability service name + environment
//   - Validates observability config as well
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	// Comma separated lists (CORS origins) arrive as a single string.
	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = envKey(key)
		if key == "server.cors_allowed_origins" {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Observability keys are all optional, so the block is merged over
	// the defaults rather than required.
	observability := DefaultObservabilityConfig()
	if k.Exists("observability") {
		if err := k.Unmarshal("observability", observability); err != nil {
			return nil, fmt.Errorf("could not unmarshal observability config: %w", err)
		}
	}
	mainConfig.Observability = observability

	// Service name and environment are forced so telemetry stays consistent.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
