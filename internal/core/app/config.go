package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/service"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"

	ConfirmSentinel = "sentinel"
	ConfirmTOTP     = "totp"
)

var (
	ErrRealBackend        = errors.New("only the mock backend is available; set USE_MOCK_BACKEND=true")
	ErrUnknownStorage     = errors.New("unknown storage driver")
	ErrUnknownConfirmMode = errors.New("unknown confirmation code mode")
	ErrMissingTOTPSecret  = errors.New("CONFIRM_TOTP_SECRET is required in totp mode")
)

type Config struct {
	UseMockBackend bool   // Required: must be true, the real backend is not part of this binary
	StorageDriver  string // Optional: memory or sqlite (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./localcore.db)

	MockLatency     time.Duration // Optional: artificial delay per mock operation (default: 500ms)
	ConfirmCodeMode string        // Optional: sentinel or totp (default: sentinel)
	ConfirmSecret   string        // Optional: base32 TOTP secret, required in totp mode
	Retention       time.Duration // Optional: conversation and message retention (default: 365 days)

	TokenIssuer      string        // Optional: iss claim of ID tokens (default: localcore)
	TokenTTL         time.Duration // Optional: ID token lifetime (default: 1h)
	SecretPepper     string        // Optional: pepper mixed into staged secret hashes
	SessionCookieKey string        // Optional: tab cookie signing key, random per process when empty
	TabSharedSession bool          // Optional: cookie-less tab requests join the persisted tab

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	LogFile              string        // Optional: rotate logs into this file instead of stdout
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		UseMockBackend: getEnvBoolOrDefault("USE_MOCK_BACKEND", false),
		StorageDriver:  strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", StorageSQLite)),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "localcore.db"),

		MockLatency:     getEnvDurationOrDefault("MOCK_LATENCY", service.DefaultLatency),
		ConfirmCodeMode: strings.ToLower(getEnvOrDefault("CONFIRM_CODE_MODE", ConfirmSentinel)),
		ConfirmSecret:   os.Getenv("CONFIRM_TOTP_SECRET"),
		Retention:       getEnvDurationOrDefault("RETENTION", service.DefaultRetention),

		TokenIssuer:      getEnvOrDefault("TOKEN_ISSUER", "localcore"),
		TokenTTL:         getEnvDurationOrDefault("TOKEN_TTL", time.Hour),
		SecretPepper:     os.Getenv("SECRET_PEPPER"),
		SessionCookieKey: os.Getenv("SESSION_COOKIE_KEY"),
		TabSharedSession: getEnvBoolOrDefault("TAB_SHARED_SESSION", false),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:              os.Getenv("LOG_FILE"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate rejects configurations the binary cannot run.
func (c Config) Validate() error {
	if !c.UseMockBackend {
		return ErrRealBackend
	}

	switch c.StorageDriver {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, c.StorageDriver)
	}

	switch c.ConfirmCodeMode {
	case ConfirmSentinel:
	case ConfirmTOTP:
		if c.ConfirmSecret == "" {
			return ErrMissingTOTPSecret
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfirmMode, c.ConfirmCodeMode)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
