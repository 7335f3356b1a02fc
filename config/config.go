package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Hotel API config
const HOTEL_API_ENDPOINT_BASE = "https://hotelapi.loyalty.dev/api"
const HOTEL_API_TIMEOUT_SECONDS = 10
const HOTEL_API_POLL_INTERVAL_MS = 2000
const HOTEL_API_POLL_MAX_ATTEMPTS = 6
const HOTEL_API_PARTNER_ID = 1

// Search defaults applied when the caller omits optional criteria.
const DEFAULT_LANG = "en_US"
const DEFAULT_CURRENCY = "USD"
const DEFAULT_COUNTRY_CODE = "US"

// Destination hotel-list cache
const HOTELS_CACHE_TTL_MINUTES = 60

// Detail enrichment fan-out cap, so one search cannot flood the upstream.
const ENRICHMENT_MAX_CONCURRENCY = 4

// SupportedCurrencies is the currency allow-list for search validation.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "SGD"}

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const HOTELS_RESOURCE = "hotels.json"
const HOTEL_STATIC_RESOURCE = "hotel_static.json"
const PRICES_RESPONSE_RESOURCE = "prices_response.json"
const ROOMS_RESPONSE_RESOURCE = "rooms_response.json"

// LoadEnv reads a .env file if one is present so local runs can override
// defaults without exporting variables by hand.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}
}

// GetEnv returns the value of the environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable or a fallback.
func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[Config] Ignoring non-integer value for %s: %q", key, v)
	}
	return fallback
}

// PollInterval returns the wait between price-search poll attempts.
func PollInterval() time.Duration {
	ms := GetEnvInt("HOTEL_API_POLL_INTERVAL_MS", HOTEL_API_POLL_INTERVAL_MS)
	return time.Duration(ms) * time.Millisecond
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
