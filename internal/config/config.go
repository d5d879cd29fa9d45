package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы хранилища слотов
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Storage Config
	StorageDriver    string `env:"STORAGE_DRIVER" envDefault:"memory"`
	StorageNamespace string `env:"STORAGE_NAMESPACE" envDefault:"dongmunseodap:"`
	DatabaseURL      string `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Stores Config
	UserID         string        `env:"USER_ID" envDefault:"current-user"`
	SimulatedDelay time.Duration `env:"SIMULATED_DELAY" envDefault:"0s"`
	ToastDuration  time.Duration `env:"TOAST_DURATION" envDefault:"3s"`

	// Seed Config
	SeedMockData    bool `env:"SEED_MOCK_DATA" envDefault:"false"`
	SeedReportCount int  `env:"SEED_REPORT_COUNT" envDefault:"20"`
	SeedAlertCount  int  `env:"SEED_ALERT_COUNT" envDefault:"5"`

	// Geocoder Config
	MapboxToken     string        `env:"MAPBOX_TOKEN"`
	MapboxLanguage  string        `env:"MAPBOX_LANGUAGE" envDefault:"ko"`
	MapboxTimeout   time.Duration `env:"MAPBOX_TIMEOUT" envDefault:"5s"`
	MapboxCacheSize int           `env:"MAPBOX_CACHE_SIZE" envDefault:"1000"`

	// Map Widget Config
	MapWidgetURL        string        `env:"MAP_WIDGET_URL"`
	MapWidgetSecret     string        `env:"MAP_WIDGET_SECRET"`
	MapWidgetTimeout    time.Duration `env:"MAP_WIDGET_TIMEOUT" envDefault:"5s"`
	MapWidgetMaxRetries int           `env:"MAP_WIDGET_MAX_RETRIES" envDefault:"3"`
	MapWidgetBaseDelay  time.Duration `env:"MAP_WIDGET_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		StorageDriver:       strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		StorageNamespace:    getEnv("STORAGE_NAMESPACE", "dongmunseodap:"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:       getEnvAsInt("REDIS_POOL_SIZE", 10),
		UserID:              getEnv("USER_ID", "current-user"),
		SimulatedDelay:      getEnvAsDuration("SIMULATED_DELAY", 0),
		ToastDuration:       getEnvAsDuration("TOAST_DURATION", 3*time.Second),
		SeedMockData:        getEnvAsBool("SEED_MOCK_DATA", false),
		SeedReportCount:     getEnvAsInt("SEED_REPORT_COUNT", 20),
		SeedAlertCount:      getEnvAsInt("SEED_ALERT_COUNT", 5),
		MapboxToken:         os.Getenv("MAPBOX_TOKEN"),
		MapboxLanguage:      getEnv("MAPBOX_LANGUAGE", "ko"),
		MapboxTimeout:       getEnvAsDuration("MAPBOX_TIMEOUT", 5*time.Second),
		MapboxCacheSize:     getEnvAsInt("MAPBOX_CACHE_SIZE", 1000),
		MapWidgetURL:        os.Getenv("MAP_WIDGET_URL"),
		MapWidgetSecret:     os.Getenv("MAP_WIDGET_SECRET"),
		MapWidgetTimeout:    getEnvAsDuration("MAP_WIDGET_TIMEOUT", 5*time.Second),
		MapWidgetMaxRetries: getEnvAsInt("MAP_WIDGET_MAX_RETRIES", 3),
		MapWidgetBaseDelay:  getEnvAsDuration("MAP_WIDGET_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for %s storage", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.SeedReportCount < 0 || c.SeedAlertCount < 0 {
		return fmt.Errorf("seed counts must not be negative")
	}
	if c.MapWidgetMaxRetries < 1 {
		return fmt.Errorf("MAP_WIDGET_MAX_RETRIES must be at least 1")
	}
	return nil
}

// UsesRedis - нужен ли клиент Redis (хранилище слотов или очередь команд карты)
func (c *Config) UsesRedis() bool {
	return c.StorageDriver == StorageRedis || c.MapWidgetURL != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
