package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseDSN     string        `env:"DATABASE_URI"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR"`
	DatabaseSSLMode string        `env:"DATABASE_SSL_MODE"`
	JWTSecret       string        `env:"JWT_SECRET"`
	CacheTTL        time.Duration `env:"CACHE_TTL"`
}

// LoadConfig собирает конфиг из переменных окружения и флагов args. Переменные окружения имеют приоритет.
// Перед разбором окружения подгружается файл .env из рабочей директории, если он есть.
func LoadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if dotEnvErr := godotenv.Load(); dotEnvErr != nil && !errors.Is(dotEnvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", dotEnvErr.Error())
	}

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, flagsErr
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	flags := flag.NewFlagSet("invoice-dashboard", flag.ContinueOnError)
	flags.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flags.StringVar(&flagConfig.DatabaseSSLMode, "s", "require", "Database sslmode, used when DSN has none")
	flags.StringVar(&flagConfig.JWTSecret, "j", "", "Session jwt secret")
	flags.DurationVar(&flagConfig.CacheTTL, "c", 10*time.Minute, "Dashboard response cache ttl") //nolint:mnd

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	cacheTTL := envConfig.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = flagsConfig.CacheTTL
	}
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		DatabaseSSLMode: defaultIfBlank(envConfig.DatabaseSSLMode, flagsConfig.DatabaseSSLMode),
		JWTSecret:       defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		CacheTTL:        cacheTTL,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
