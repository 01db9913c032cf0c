package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

type Config struct {
	DatabaseURL    string        `yaml:"database_url"`
	PoolMin        int32         `yaml:"pool_min"`
	PoolMax        int32         `yaml:"pool_max"`
	HTTPAddr       string        `yaml:"addr"`
	GRPCHealthAddr string        `yaml:"grpc_health_addr"`
	QueryTimeout   time.Duration `yaml:"query_timeout"`
	AdminTokenHash string        `yaml:"admin_token_hash"`
	LogLevel       string        `yaml:"log_level"`
	ServiceName    string        `yaml:"service_name"`
	OTLPEndpoint   string        `yaml:"otlp_endpoint"`
	TraceStdout    bool          `yaml:"trace_stdout"`
}

func defaults() Config {
	return Config{
		PoolMin:      1,
		PoolMax:      10,
		HTTPAddr:     ":8000",
		QueryTimeout: 30 * time.Second,
		LogLevel:     "info",
		ServiceName:  "stencil-orders",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt32(k string, def int32) (int32, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", k, v)
	}
	return int32(n), nil
}

func getenvDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}

// Load reads .env (if present), the optional APP_CONFIG_FILE yaml file and
// finally the process environment, later sources winning.
func Load() (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	cfg := defaults()
	if path := os.Getenv("APP_CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	var err error
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.HTTPAddr = getenv("APP_ADDR", cfg.HTTPAddr)
	cfg.GRPCHealthAddr = getenv("APP_GRPC_HEALTH_ADDR", cfg.GRPCHealthAddr)
	cfg.AdminTokenHash = getenv("APP_ADMIN_TOKEN_HASH", cfg.AdminTokenHash)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.ServiceName = getenv("OTEL_SERVICE_NAME", cfg.ServiceName)
	cfg.OTLPEndpoint = getenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTLPEndpoint)
	if v := os.Getenv("APP_TRACE_STDOUT"); v != "" {
		if cfg.TraceStdout, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("APP_TRACE_STDOUT: %w", err)
		}
	}
	if cfg.PoolMin, err = getenvInt32("APP_POOL_MIN", cfg.PoolMin); err != nil {
		return Config{}, err
	}
	if cfg.PoolMax, err = getenvInt32("APP_POOL_MAX", cfg.PoolMax); err != nil {
		return Config{}, err
	}
	if cfg.QueryTimeout, err = getenvDuration("APP_QUERY_TIMEOUT", cfg.QueryTimeout); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	if c.PoolMax < 1 {
		return fmt.Errorf("APP_POOL_MAX must be >= 1, got %d", c.PoolMax)
	}
	if c.PoolMin < 0 || c.PoolMin > c.PoolMax {
		return fmt.Errorf("APP_POOL_MIN must be within [0, %d], got %d", c.PoolMax, c.PoolMin)
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("APP_QUERY_TIMEOUT must be positive, got %s", c.QueryTimeout)
	}
	return nil
}

// LogValues writes the non-secret settings.
func (c Config) LogValues(l *slog.Logger) {
	l.Info("config loaded",
		"addr", c.HTTPAddr,
		"grpc_health_addr", c.GRPCHealthAddr,
		"pool_min", c.PoolMin,
		"pool_max", c.PoolMax,
		"query_timeout", c.QueryTimeout.String(),
		"admin_auth", c.AdminTokenHash != "",
		"log_level", c.LogLevel,
		"otlp_endpoint", c.OTLPEndpoint,
		"trace_stdout", c.TraceStdout,
	)
}
