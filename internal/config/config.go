// Package config loads process configuration for the dashboard binaries.
package config

import (
	"fmt"
	"strings"
	"time"

	dbbuilder "github.com/godilite/ride-insights/pkg/database"
)

// Config holds all configuration for the application.
type Config struct {
	// AppEnv selects production or development logging.
	AppEnv string `koanf:"app_env"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	HTTPAddr              string `koanf:"http_addr"`
	GRPCPort              int    `koanf:"grpc_port"`
	GRPCReflectionEnabled bool   `koanf:"grpc_reflection"`

	// DBDriver is mysql, postgres or sqlite3. DBDSN, when set, wins over
	// the individual endpoint fields.
	DBDriver         string        `koanf:"db_driver"`
	DBDSN            string        `koanf:"db_dsn"`
	DBHost           string        `koanf:"db_host"`
	DBPort           int           `koanf:"db_port"`
	DBUser           string        `koanf:"db_user"`
	DBPassword       string        `koanf:"db_password"`
	DBName           string        `koanf:"db_name"`
	DBPath           string        `koanf:"db_path"`
	DBConnectTimeout time.Duration `koanf:"db_connect_timeout"`

	// QueryTimeout bounds each insight query.
	QueryTimeout time.Duration `koanf:"query_timeout"`

	// CORSAllowedOrigins is a comma separated origin list; empty or "*" allows any.
	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		AppEnv:           "development",
		LogLevel:         "info",
		HTTPAddr:         ":8080",
		GRPCPort:         50051,
		DBDriver:         dbbuilder.DriverMySQL,
		DBHost:           "localhost",
		DBPort:           3306,
		DBUser:           "root",
		DBName:           "ola",
		DBPath:           "./data/ola.db",
		DBConnectTimeout: 5 * time.Second,
		QueryTimeout:     10 * time.Second,
	}
}

// Validate reports configuration that cannot be served.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("%w: http_addr must not be empty", ErrInvalidConfig)
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("%w: grpc_port %d out of range", ErrInvalidConfig, c.GRPCPort)
	}
	switch c.DBDriver {
	case dbbuilder.DriverMySQL, dbbuilder.DriverPostgres, dbbuilder.DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported db_driver %q", ErrInvalidConfig, c.DBDriver)
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("%w: query_timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// DataSource returns the DSN for the configured driver.
func (c *Config) DataSource() (string, error) {
	if c.DBDSN != "" {
		return c.DBDSN, nil
	}
	return dbbuilder.DataSource(c.DBDriver, dbbuilder.Endpoint{
		Host:           c.DBHost,
		Port:           c.DBPort,
		User:           c.DBUser,
		Password:       c.DBPassword,
		Name:           c.DBName,
		ConnectTimeout: c.DBConnectTimeout,
	}, c.DBPath)
}

// DatabaseOptions turns the store settings into pool options.
func (c *Config) DatabaseOptions() ([]dbbuilder.Option, error) {
	dsn, err := c.DataSource()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	opts := []dbbuilder.Option{
		dbbuilder.WithDriver(c.DBDriver),
		dbbuilder.WithDataSource(dsn),
		dbbuilder.WithPingTimeout(c.DBConnectTimeout),
	}
	if c.DBDriver != dbbuilder.DriverSQLite {
		opts = append(opts,
			dbbuilder.WithMaxOpenConns(4),
			dbbuilder.WithMaxIdleConns(2),
			dbbuilder.WithConnMaxLifetime(5*time.Minute),
		)
	}
	return opts, nil
}

// AllowedOrigins splits CORSAllowedOrigins.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
