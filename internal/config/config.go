package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`

	// RedisAddr адрес Redis для ключей идемпотентности. Пустой адрес отключает идемпотентность.
	RedisAddr      string        `env:"REDIS_ADDR"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL"`

	// NotifyWebhookURL адрес доставки запросов пояснений. Пустой адрес отключает доставку.
	NotifyWebhookURL string `env:"NOTIFY_WEBHOOK_URL"`
	NotifyWorkers    uint   `env:"NOTIFY_WORKERS"`
	NotifyBatchSize  uint   `env:"NOTIFY_BATCH_SIZE"`
}

func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(args, &flagsConfig); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func loadFlags(args []string, flagConfig *Config) error {
	fs := flag.NewFlagSet("cashbox", flag.ContinueOnError)

	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	fs.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address for idempotency keys")
	fs.DurationVar(&flagConfig.IdempotencyTTL, "idempotency-ttl", 24*time.Hour, "Idempotency key TTL")
	fs.StringVar(&flagConfig.NotifyWebhookURL, "w", "", "Explanation requests webhook URL")
	fs.UintVar(&flagConfig.NotifyWorkers, "notify-workers", 5, "Notification delivery workers") //nolint:mnd
	fs.UintVar(&flagConfig.NotifyBatchSize, "notify-batch", 50, "Notifications per iteration")  //nolint:mnd

	return fs.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:       defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:      defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:    defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:        defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		RedisAddr:        defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		IdempotencyTTL:   defaultIfBlank(envConfig.IdempotencyTTL, flagsConfig.IdempotencyTTL),
		NotifyWebhookURL: defaultIfBlank(envConfig.NotifyWebhookURL, flagsConfig.NotifyWebhookURL),
		NotifyWorkers:    defaultIfBlank(envConfig.NotifyWorkers, flagsConfig.NotifyWorkers),
		NotifyBatchSize:  defaultIfBlank(envConfig.NotifyBatchSize, flagsConfig.NotifyBatchSize),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
