package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"centerparcs-scraper/helpers"
)

// Config represents the application configuration
type Config struct {
	// Scraping targets
	ListingURL    string
	PricingAPIURL string

	// Stay durations (in nights) queried for every cottage
	Durees []int

	// Database configuration
	DBDriver string
	DBDSN    string

	// Insert batch size for the full-replace write
	BatchSize int

	// Memcache configuration (rate-limit guard, disabled when empty)
	MemcacheAddr string
	BlockTime    time.Duration

	// Redis configuration (run outcome notifier, disabled when empty)
	RedisAddr      string
	RedisDB        int
	RedisStream    string
	RedisMaxLength int

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "10"))
	batchSize, _ := strconv.Atoi(getEnv("BATCH_SIZE", "100"))
	blockTime, _ := strconv.Atoi(getEnv("BLOCK_TIME_SECONDS", "300"))

	durees := helpers.ParseIntList(getEnv("DUREES", "2,3,4,5,6,7,10,11,14"))

	return &Config{
		ListingURL:     getEnv("LISTING_URL", "https://www.centerparcs.fr/fr-fr/france/fp_VN_vacances-domaine-villages-nature-paris/cottages"),
		PricingAPIURL:  getEnv("PRICING_API_URL", "https://cpe-search-api.groupepvcp.com/v1/product/flexCalendar"),
		Durees:         durees,
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBDSN:          getEnv("DB_DSN", "sejours.db"),
		BatchSize:      batchSize,
		MemcacheAddr:   getEnv("MEMCACHE_ADDR", ""),
		BlockTime:      time.Duration(blockTime) * time.Second,
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisDB:        redisDB,
		RedisStream:    getEnv("REDIS_STREAM", "scraper_results"),
		RedisMaxLength: redisMaxLength,
		Environment:    getEnv("SCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the pipeline cannot run with
func (c *Config) Validate() error {
	if c.ListingURL == "" {
		return fmt.Errorf("listing URL must not be empty")
	}
	if c.PricingAPIURL == "" {
		return fmt.Errorf("pricing API URL must not be empty")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	for _, d := range c.Durees {
		if d <= 0 {
			return fmt.Errorf("durations must be positive, got %d", d)
		}
	}
	if c.DBDriver != "sqlite" && c.DBDriver != "postgres" {
		return fmt.Errorf("unsupported db driver: %s", c.DBDriver)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
