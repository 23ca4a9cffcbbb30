package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	StorageDriver   string
	DatabaseURI     string
	DynamoTable     string
	DynamoEndpoint  string
	AWSRegion       string
	AuthSecret      string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string

	AdminPhone    string
	AdminPassword string
	SeedPassword  string

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	TelegramToken  string
	TelegramChatID int64
}

// DefaultAuthSecret is the placeholder signing secret used when AUTH_SECRET is unset.
const DefaultAuthSecret = "change-me-in-production"

const (
	defaultRunAddress      = ":8080"
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultAWSRegion       = "us-east-1"
	defaultGeminiBaseURL   = "https://generativelanguage.googleapis.com"
	defaultGeminiModel     = "gemini-2.5-flash"
	defaultEnvFile         = ".env"
)

// Load parses configuration from flags, environment variables and an optional .env file.
func Load() (*Config, error) {
	lookup, err := withEnvFile(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], lookup)
}

type envLookup func(string) (string, bool)

// withEnvFile layers the values of ENV_FILE (default .env) under the real
// environment. A missing file is not an error.
func withEnvFile(lookup envLookup) (envLookup, error) {
	path := getString(lookup, "ENV_FILE", defaultEnvFile)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, ok
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		StorageDriver:   getString(lookup, "STORAGE_DRIVER", ""),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		DynamoTable:     getString(lookup, "DYNAMODB_TABLE", ""),
		DynamoEndpoint:  getString(lookup, "DYNAMODB_ENDPOINT", ""),
		AWSRegion:       getString(lookup, "AWS_REGION", defaultAWSRegion),
		AuthSecret:      getString(lookup, "AUTH_SECRET", DefaultAuthSecret),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
		AdminPhone:      getString(lookup, "ADMIN_PHONE", ""),
		AdminPassword:   getString(lookup, "ADMIN_PASSWORD", ""),
		SeedPassword:    getString(lookup, "SEED_PASSWORD", ""),
		GeminiAPIKey:    getString(lookup, "GEMINI_API_KEY", ""),
		GeminiBaseURL:   getString(lookup, "GEMINI_BASE_URL", defaultGeminiBaseURL),
		GeminiModel:     getString(lookup, "GEMINI_MODEL", defaultGeminiModel),
		TelegramToken:   getString(lookup, "TELEGRAM_BOT_TOKEN", ""),
	}

	flags := flag.NewFlagSet("storefront", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "Storage driver: memory, postgres or dynamodb")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	flags.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = strings.TrimSpace(string(content))
	}

	if v, ok := lookup("TELEGRAM_CHAT_ID"); ok && v != "" {
		if cfg.TelegramChatID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid telegram chat id: %w", err)
		}
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if err := cfg.resolveDriver(); err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	if (cfg.AdminPhone == "") != (cfg.AdminPassword == "") {
		return nil, fmt.Errorf("admin phone and password must be provided together")
	}

	return cfg, nil
}

// resolveDriver picks postgres when only a DSN is given and checks that the
// chosen driver has its required settings.
func (c *Config) resolveDriver() error {
	if c.StorageDriver == "" {
		c.StorageDriver = DriverMemory
		if c.DatabaseURI != "" {
			c.StorageDriver = DriverPostgres
		}
	}

	switch c.StorageDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("database URI must be provided")
		}
	case DriverDynamoDB:
		if c.DynamoTable == "" {
			return fmt.Errorf("dynamodb table must be provided")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	return nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
