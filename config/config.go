// Package config provides configuration management for the print service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Labels   LabelsConfig
	Store    StoreConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	RateLimit       int
	RateWindow      time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// LabelsConfig holds the print defaults stored settings and requests are layered onto.
type LabelsConfig struct {
	LayoutGroup           string
	LayoutItem            string
	WeightUnit            string
	BarcodeWidthFactor    int
	BarcodeHeight         int
	InvoiceGroupItems     bool
	InvoiceGroupName      string
	InvoiceGroupEmptyRows int
	ValidateAddresses     bool
}

// StoreConfig is the configured sender block.
type StoreConfig struct {
	Name     string
	Address  string
	Address2 string
	City     string
	State    string
	Country  string
	Postcode string
	TaxID    string
	LogoURL  string
}

// CacheConfig holds barcode and stored-settings cache configuration.
type CacheConfig struct {
	BarcodeSize   int
	BarcodeTTL    time.Duration
	BarcodeShards int
	SettingsTTL   time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// RedisConfig holds the shared barcode cache configuration. Redis is used
// only when URL is set.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	OpTimeout    time.Duration
}

// Enabled reports whether a Redis URL is configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			RateLimit:       getEnvInt("RATE_LIMIT", 100),
			RateWindow:      getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Labels: LabelsConfig{
			LayoutGroup:           getEnv("LABEL_LAYOUT_GROUP", "percentage"),
			LayoutItem:            getEnv("LABEL_LAYOUT_ITEM", "2x2"),
			WeightUnit:            getEnv("WEIGHT_UNIT", "kg"),
			BarcodeWidthFactor:    getEnvPositiveInt("BARCODE_WIDTH_FACTOR", 2),
			BarcodeHeight:         getEnvPositiveInt("BARCODE_HEIGHT", 54),
			InvoiceGroupItems:     getEnvBool("INVOICE_GROUP_ITEMS", false),
			InvoiceGroupName:      getEnv("INVOICE_GROUP_NAME", "Produtos diversos"),
			InvoiceGroupEmptyRows: getEnvNonNegativeInt("INVOICE_GROUP_EMPTY_ROWS", 5),
			ValidateAddresses:     getEnvBool("VALIDATE_ADDRESSES", false),
		},
		Store: StoreConfig{
			Name:     getEnv("STORE_NAME", ""),
			Address:  getEnv("STORE_ADDRESS", ""),
			Address2: getEnv("STORE_ADDRESS_2", ""),
			City:     getEnv("STORE_CITY", ""),
			State:    getEnv("STORE_STATE", ""),
			Country:  getEnv("STORE_COUNTRY", "BR"),
			Postcode: getEnv("STORE_POSTCODE", ""),
			TaxID:    getEnv("STORE_CPF_CNPJ", ""),
			LogoURL:  getEnv("STORE_LOGO_URL", ""),
		},
		Cache: CacheConfig{
			BarcodeSize:   getEnvPositiveInt("BARCODE_CACHE_SIZE", 2000),
			BarcodeTTL:    getEnvDuration("BARCODE_CACHE_TTL", 24*time.Hour),
			BarcodeShards: getEnvPositiveInt("BARCODE_CACHE_SHARDS", 16),
			SettingsTTL:   getEnvDuration("SETTINGS_CACHE_TTL", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "print_orders"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvPositiveInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvPositiveInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			URL:          getEnv("REDIS_URL", ""),
			PoolSize:     getEnvPositiveInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvNonNegativeInt("REDIS_MIN_IDLE_CONNS", 2),
			OpTimeout:    getEnvDuration("REDIS_OP_TIMEOUT", 100*time.Millisecond),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvPositiveInt(key string, defaultValue int) int {
	if i := getEnvInt(key, defaultValue); i > 0 {
		return i
	}
	return defaultValue
}

func getEnvNonNegativeInt(key string, defaultValue int) int {
	if i := getEnvInt(key, defaultValue); i >= 0 {
		return i
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
