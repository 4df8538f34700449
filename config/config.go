package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Store    StoreConfig    `mapstructure:"store"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig holds transport settings. A RateLimit of 0 disables rate limiting.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RateLimit      int           `mapstructure:"rate_limit"`
	RateWindow     time.Duration `mapstructure:"rate_window"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig selects the user store backend. SeedUsers are created at startup.
type StoreConfig struct {
	Driver    string   `mapstructure:"driver"`
	SeedUsers []string `mapstructure:"seed_users"`
}

type PostgresConfig struct {
	URL            string        `mapstructure:"url"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	Migrate        bool          `mapstructure:"migrate"`
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.HTTP.AllowedOrigins = splitList(cfg.HTTP.AllowedOrigins)
	cfg.Store.SeedUsers = splitList(cfg.Store.SeedUsers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 10*time.Second)
	v.SetDefault("http.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("http.rate_limit", 100)
	v.SetDefault("http.rate_window", time.Minute)

	v.SetDefault("logging.level", "info")

	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.seed_users", []string{})

	v.SetDefault("postgres.url", "")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.connect_timeout", 5*time.Second)
	v.SetDefault("postgres.migrate", true)
}

func bindEnvs(v *viper.Viper) error {
	keys := []string{
		"server.host",
		"server.shutdown_timeout",
		"http.request_timeout",
		"http.allowed_origins",
		"http.rate_limit",
		"http.rate_window",
		"logging.level",
		"store.driver",
		"store.seed_users",
		"postgres.max_conns",
		"postgres.min_conns",
		"postgres.connect_timeout",
		"postgres.migrate",
	}
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return fmt.Errorf("bind %s: %w", k, err)
		}
	}

	// PORT and DATABASE_URL are the names most hosting platforms inject.
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return fmt.Errorf("bind server.port: %w", err)
	}
	if err := v.BindEnv("postgres.url", "DATABASE_URL", "POSTGRES_URL"); err != nil {
		return fmt.Errorf("bind postgres.url: %w", err)
	}
	return nil
}

// splitList flattens comma separated entries, since list values coming from
// the environment arrive as a single string.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate ensures required fields are present and consistent.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	if c.HTTP.RateLimit < 0 {
		return errors.New("http.rate_limit cannot be negative")
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.RateWindow <= 0 {
		return errors.New("http.rate_window must be positive when rate limiting is enabled")
	}

	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Postgres.URL == "" {
			return errors.New("DATABASE_URL environment variable is required for the postgres store")
		}
		if c.Postgres.MinConns > c.Postgres.MaxConns {
			return errors.New("postgres.min_conns cannot exceed postgres.max_conns")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}

	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
