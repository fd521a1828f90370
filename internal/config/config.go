package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress    = "localhost:8080"
	defaultMigrationsDir = "internal/db/migrations"
	defaultTradingURL    = "https://paper-api.alpaca.markets"
	defaultDataURL       = "https://data.alpaca.markets"
	defaultKafkaTopic    = "ledger-events"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	MarketTradingURL string `env:"MARKET_TRADING_URL"`
	MarketDataURL    string `env:"MARKET_DATA_URL"`
	AlpacaKeyID      string `env:"ALPACA_KEY"`
	AlpacaSecretKey  string `env:"ALPACA_SECRET"`

	// KafkaBrokers пустой список отключает публикацию событий.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"`
}

// String скрывает секреты при выводе конфигурации в лог.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s MarketTradingURL:%s MarketDataURL:%s KafkaBrokers:%v KafkaTopic:%s}",
		c.RunAddress, c.MigrationsDir, c.MarketTradingURL, c.MarketDataURL, c.KafkaBrokers, c.KafkaTopic,
	)
}

func LoadConfig() (*Config, error) {
	// .env не обязателен, переменные окружения процесса имеют приоритет над файлом.
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", dotenvErr.Error())
	}
	return loadConfig(flag.CommandLine, os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(fset *flag.FlagSet, args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(fset, args, &flagsConfig); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	return conf, nil
}

func loadFlags(fset *flag.FlagSet, args []string, flagConfig *Config) error {
	var kafkaBrokers string

	fset.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	fset.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fset.StringVar(&flagConfig.MigrationsDir, "m", defaultMigrationsDir, "Database migrations directory")
	fset.StringVar(&flagConfig.MarketTradingURL, "trading-url", defaultTradingURL, "Market assets API base URL")
	fset.StringVar(&flagConfig.MarketDataURL, "data-url", defaultDataURL, "Market data API base URL")
	fset.StringVar(&kafkaBrokers, "k", "", "Kafka brokers, comma separated")
	fset.StringVar(&flagConfig.KafkaTopic, "t", defaultKafkaTopic, "Kafka topic for ledger events")

	if err := fset.Parse(args); err != nil {
		return err //nolint:wrapcheck
	}
	flagConfig.KafkaBrokers = splitList(kafkaBrokers)
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	brokers := envConfig.KafkaBrokers
	if len(brokers) == 0 {
		brokers = flagsConfig.KafkaBrokers
	}
	return &Config{
		RunAddress:       defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:      defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:    defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		MarketTradingURL: defaultIfBlank(envConfig.MarketTradingURL, flagsConfig.MarketTradingURL),
		MarketDataURL:    defaultIfBlank(envConfig.MarketDataURL, flagsConfig.MarketDataURL),
		// ключи поставщика котировок задаются только через окружение.
		AlpacaKeyID:     envConfig.AlpacaKeyID,
		AlpacaSecretKey: envConfig.AlpacaSecretKey,
		KafkaBrokers:    brokers,
		KafkaTopic:      defaultIfBlank(envConfig.KafkaTopic, flagsConfig.KafkaTopic),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
