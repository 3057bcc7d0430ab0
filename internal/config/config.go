// Package config loads tracker settings from the environment and an
// optional .env file.
package config

import (
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
)

// Backend selects where the roster is stored
type Backend string

// Supported storage backends
const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// DefaultEnvFile is read by Load when no files are named
const DefaultEnvFile = ".env"

// Config holds every runtime setting. Flags override these after loading.
type Config struct {
	Backend       Backend       `env:"HEROQUEST_BACKEND" envDefault:"sqlite"`
	RedisAddr     string        `env:"HEROQUEST_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"HEROQUEST_REDIS_PASSWORD"`
	RedisDB       int           `env:"HEROQUEST_REDIS_DB" envDefault:"0"`
	SQLitePath    string        `env:"HEROQUEST_SQLITE_PATH" envDefault:"heroquest.db"`
	StateKey      string        `env:"HEROQUEST_STATE_KEY" envDefault:"heroquest:state"`
	HistorySize   int           `env:"HEROQUEST_HISTORY_SIZE" envDefault:"50"`
	WriteTimeout  time.Duration `env:"HEROQUEST_WRITE_TIMEOUT" envDefault:"5s"`
	LogLevel      string        `env:"HEROQUEST_LOG_LEVEL" envDefault:"warn"`
}

// Load reads the named .env files (DefaultEnvFile when none), then parses
// the process environment. Variables already set win over file values and
// a missing file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("No env file found", "file", file)
				continue
			}
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read env file %s", file)
		}
	}

	return parse(env.Options{})
}

// FromMap parses settings from environment instead of the process
// environment
func FromMap(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.Backend = Backend(strings.ToLower(string(cfg.Backend)))
	return cfg, nil
}

// Validate checks the settings for the selected backend
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("backend", string(c.Backend),
		[]string{string(BackendSQLite), string(BackendRedis)}, vb)
	switch c.Backend {
	case BackendSQLite:
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	case BackendRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
		if c.RedisDB < 0 {
			vb.InvalidField("redis_db", "must not be negative")
		}
	}
	errors.ValidateRequired("state_key", c.StateKey, vb)
	errors.ValidateRange("history_size", c.HistorySize, 1, 1000, vb)
	if c.WriteTimeout <= 0 {
		vb.InvalidField("write_timeout", "must be positive")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.InvalidField("log_level", err.Error())
	}

	return vb.Build()
}

// SlogLevel is the configured log level, warn when unparseable
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelWarn, errors.InvalidArgumentf("unknown log level %q", value)
	}
	return level, nil
}

// Environ lists the variables Config reads, for help output
func Environ() []string {
	return []string{
		"HEROQUEST_BACKEND",
		"HEROQUEST_REDIS_ADDR",
		"HEROQUEST_REDIS_PASSWORD",
		"HEROQUEST_REDIS_DB",
		"HEROQUEST_SQLITE_PATH",
		"HEROQUEST_STATE_KEY",
		"HEROQUEST_HISTORY_SIZE",
		"HEROQUEST_WRITE_TIMEOUT",
		"HEROQUEST_LOG_LEVEL",
	}
}
