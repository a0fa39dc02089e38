package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envServerAddress   = "SERVER_ADDRESS"
	envDatabaseDSN     = "DATABASE_DSN"
	envDBMaxConns      = "DB_MAX_CONNS"
	envDBMinConns      = "DB_MIN_CONNS"
	envMigrateOnStart  = "MIGRATE_ON_START"
	envFriendshipMode  = "FRIENDSHIP_MODE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envRateLimitRPS    = "RATE_LIMIT_RPS"
	envRateLimitBurst  = "RATE_LIMIT_BURST"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultDatabaseDSN     = "" // пустой DSN - хранилище в памяти
	defaultDBMaxConns      = 10
	defaultDBMinConns      = 2
	defaultMigrateOnStart  = true
	defaultFriendshipMode  = FriendshipDirectional
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultRateLimitRPS    = 100
	defaultRateLimitBurst  = 200
	defaultShutdownTimeout = 10 * time.Second
)

const (
	FriendshipDirectional = "directional"
	FriendshipMutual      = "mutual"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	ServerAddress   string
	DatabaseDSN     string
	DBMaxConns      int
	DBMinConns      int
	MigrateOnStart  bool
	FriendshipMode  string
	LogLevel        string
	LogFormat       string
	RateLimitRPS    float64 // 0 - без ограничения
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// NewConfig собирает конфиг: значения по умолчанию, затем флаги,
// затем переменные окружения (у них наивысший приоритет).
func NewConfig() (*Config, error) {
	return load(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

func load(fs *flag.FlagSet, args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		ServerAddress:   defaultServerAddress,
		DatabaseDSN:     defaultDatabaseDSN,
		DBMaxConns:      defaultDBMaxConns,
		DBMinConns:      defaultDBMinConns,
		MigrateOnStart:  defaultMigrateOnStart,
		FriendshipMode:  defaultFriendshipMode,
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
		RateLimitRPS:    defaultRateLimitRPS,
		RateLimitBurst:  defaultRateLimitBurst,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	// Parse flags
	fs.StringVar(&cfg.ServerAddress, "server-address", cfg.ServerAddress, "Server address")
	fs.StringVar(&cfg.DatabaseDSN, "database-dsn", cfg.DatabaseDSN, "Database DSN, empty for in-memory storage")
	fs.IntVar(&cfg.DBMaxConns, "db-max-conns", cfg.DBMaxConns, "Max connections in pool")
	fs.IntVar(&cfg.DBMinConns, "db-min-conns", cfg.DBMinConns, "Min connections in pool")
	fs.BoolVar(&cfg.MigrateOnStart, "migrate", cfg.MigrateOnStart, "Apply migrations on start")
	fs.StringVar(&cfg.FriendshipMode, "friendship-mode", cfg.FriendshipMode, "directional or mutual")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console or json")
	fs.Float64Var(&cfg.RateLimitRPS, "rate-limit-rps", cfg.RateLimitRPS, "Requests per second, 0 disables limiter")
	fs.IntVar(&cfg.RateLimitBurst, "rate-limit-burst", cfg.RateLimitBurst, "Rate limiter burst")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// Apply environment variables
	var errs []error
	applyEnv(lookup, envServerAddress, &cfg.ServerAddress)
	applyEnv(lookup, envDatabaseDSN, &cfg.DatabaseDSN)
	errs = append(errs, applyEnvInt(lookup, envDBMaxConns, &cfg.DBMaxConns))
	errs = append(errs, applyEnvInt(lookup, envDBMinConns, &cfg.DBMinConns))
	errs = append(errs, applyEnvBool(lookup, envMigrateOnStart, &cfg.MigrateOnStart))
	applyEnv(lookup, envFriendshipMode, &cfg.FriendshipMode)
	applyEnv(lookup, envLogLevel, &cfg.LogLevel)
	applyEnv(lookup, envLogFormat, &cfg.LogFormat)
	errs = append(errs, applyEnvFloat(lookup, envRateLimitRPS, &cfg.RateLimitRPS))
	errs = append(errs, applyEnvInt(lookup, envRateLimitBurst, &cfg.RateLimitBurst))
	errs = append(errs, applyEnvDuration(lookup, envShutdownTimeout, &cfg.ShutdownTimeout))
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// Final setup
	cfg.normalizeServerAddress()
	cfg.FriendshipMode = strings.ToLower(strings.TrimSpace(cfg.FriendshipMode))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.FriendshipMode {
	case FriendshipDirectional, FriendshipMutual:
	default:
		return fmt.Errorf("%w: unknown friendship mode %q", ErrInvalidConfig, c.FriendshipMode)
	}

	if c.ServerAddress == "" {
		return fmt.Errorf("%w: server address must not be empty", ErrInvalidConfig)
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("%w: bad pool size min=%d max=%d", ErrInvalidConfig, c.DBMinConns, c.DBMaxConns)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// UseInMemory - без DSN сервис работает на хранилище в памяти
func (c *Config) UseInMemory() bool {
	return c.DatabaseDSN == ""
}

func applyEnv(lookup func(string) (string, bool), key string, target *string) {
	if val, ok := lookup(key); ok {
		*target = val
	}
}

func applyEnvInt(lookup func(string) (string, bool), key string, target *int) error {
	val, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = n
	return nil
}

func applyEnvFloat(lookup func(string) (string, bool), key string, target *float64) error {
	val, ok := lookup(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = f
	return nil
}

func applyEnvBool(lookup func(string) (string, bool), key string, target *bool) error {
	val, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = b
	return nil
}

func applyEnvDuration(lookup func(string) (string, bool), key string, target *time.Duration) error {
	val, ok := lookup(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = d
	return nil
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}
