package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Pagination PaginationConfig
	Inventory  InventoryConfig
}

type ServerConfig struct {
	AppEnv string
	Port   string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
	File              string
	MaxSizeMB         int
	MaxBackups        int
	MaxAgeDays        int
}

type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type InventoryConfig struct {
	DefaultLowStockThreshold int
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "development"),
			Port:   getEnv("PORT", "3000"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
			File:              getEnv("LOGGER_FILE", ""),
			MaxSizeMB:         getEnvInt("LOGGER_MAX_SIZE_MB", 100),
			MaxBackups:        getEnvInt("LOGGER_MAX_BACKUPS", 3),
			MaxAgeDays:        getEnvInt("LOGGER_MAX_AGE_DAYS", 28),
		},
		Pagination: PaginationConfig{
			DefaultLimit: getEnvInt("PAGINATION_DEFAULT_LIMIT", 20),
			MaxLimit:     getEnvInt("PAGINATION_MAX_LIMIT", 100),
		},
		Inventory: InventoryConfig{
			DefaultLowStockThreshold: getEnvInt("INVENTORY_DEFAULT_LOW_STOCK_THRESHOLD", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
