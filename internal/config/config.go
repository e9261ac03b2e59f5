// Package config provides configuration management for the webhook guard
// application. It handles loading configuration from environment variables
// with sensible defaults and validates the configuration to ensure the
// application starts safely.
//
// The only required setting is the channel secret that inbound webhook
// signatures are verified against; everything else has working defaults.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_FILE: Log file path; empty logs to stdout (default: empty)
//
// Webhook Verification:
//   - LINE_CHANNEL_SECRET: Shared secret webhook signatures are computed
//     with (required)
//   - MAX_BODY_BYTES: Request body size cap in bytes; 0 keeps the built-in
//     1 MiB cap, a negative value disables the cap (default: 0)
//
// TLS:
//   - TLS_CERT_FILE: TLS certificate path (optional)
//   - TLS_KEY_FILE: TLS private key path (optional; required together with
//     TLS_CERT_FILE)
//
// Observability:
//   - METRICS_ENABLED: Expose Prometheus metrics on /metrics (default: true)
//
// Example usage:
//
//	// Load configuration from environment
//	config := config.Load()
//
//	// Validate configuration
//	if err := config.Validate(); err != nil {
//		log.Fatalf("Invalid configuration: %v", err)
//	}
//
//	// Use configuration
//	server := &http.Server{
//		Addr: ":" + config.Port,
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"webhook-guard/internal/common/errors"
	"webhook-guard/internal/common/validation"
)

// Config holds all configuration values for the webhook guard application.
// All fields correspond to environment variables that can be set to
// override the default values.
//
// The configuration is loaded using the Load() function and should be
// validated using the Validate() method before use.
type Config struct {
	// Application settings
	Port     string // Server port number
	LogLevel string // Logging level (debug, info, warn, error)
	LogFile  string // Log file path; empty writes to stdout

	// Webhook verification
	ChannelSecret string // Shared secret for signature verification (required)
	MaxBodyBytes  int64  // Body size cap; 0 = built-in default, negative = uncapped

	// TLS configuration
	TLSCertFile string // TLS certificate file path
	TLSKeyFile  string // TLS private key file path

	// Observability
	MetricsEnabled bool // Whether the Prometheus endpoint is served
}

// Load creates a new Config instance with values loaded from environment
// variables. If an environment variable is not set, the corresponding
// default value is used.
//
// This function does not validate the configuration - call Validate() on
// the returned Config to ensure all required values are properly set and
// valid.
//
// Returns:
//   - *Config: A new configuration instance with values from environment variables
//
// Example:
//
//	config := config.Load()
//	if err := config.Validate(); err != nil {
//		log.Fatal("Configuration error:", err)
//	}
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		ChannelSecret: getEnv("LINE_CHANNEL_SECRET", ""),
		MaxBodyBytes:  getInt64Env("MAX_BODY_BYTES", 0),

		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		MetricsEnabled: getBoolEnv("METRICS_ENABLED", true),
	}
}

// getEnv retrieves an environment variable value or returns a default value if not set.
//
// Parameters:
//   - key: The environment variable name to look up
//   - defaultValue: The value to return if the environment variable is not set or empty
//
// Returns:
//   - string: The environment variable value or the default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv retrieves a boolean environment variable value or returns a default value.
//
// This function accepts common boolean representations:
//   - "true", "1", "t", "TRUE", "True" -> true
//   - "false", "0", "f", "FALSE", "False" -> false
//   - Any other value or parsing error -> returns defaultValue
//
// Parameters:
//   - key: The environment variable name to look up
//   - defaultValue: The value to return if the environment variable is not set, empty, or invalid
//
// Returns:
//   - bool: The parsed boolean value or the default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getInt64Env retrieves an integer environment variable value or returns a
// default value. Any parsing error returns defaultValue.
//
// Parameters:
//   - key: The environment variable name to look up
//   - defaultValue: The value to return if the environment variable is not set, empty, or invalid
//
// Returns:
//   - int64: The parsed integer value or the default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Validate performs validation on the configuration to ensure all required
// fields are present and all values are valid.
//
// This method checks:
//   - Required fields (LINE_CHANNEL_SECRET)
//   - Field format validation (port range, log level)
//   - Cross-field dependencies (TLS certificate and key must be paired)
//
// The application should call this method after loading configuration and
// before starting to ensure safe operation.
//
// Returns:
//   - error: A descriptive *errors.AppError if validation fails, nil if
//     the configuration is valid
//
// Example:
//
//	config := config.Load()
//	if err := config.Validate(); err != nil {
//		log.Fatalf("Configuration validation failed: %v", err)
//	}
func (c *Config) Validate() error {
	v := validation.NewValidator()

	v.RequireString(c.ChannelSecret, "LINE_CHANNEL_SECRET")

	if port, err := strconv.Atoi(c.Port); err != nil {
		v.Validate(func() error {
			return fmt.Errorf("PORT must be a number, got %q", c.Port)
		})
	} else {
		v.RequireRange(port, 1, 65535, "PORT")
	}

	v.RequireOneOf(strings.ToLower(c.LogLevel),
		[]string{"debug", "info", "warn", "warning", "error"}, "LOG_LEVEL")

	v.ValidateIf(c.TLSCertFile != "" || c.TLSKeyFile != "", func() error {
		if c.TLSCertFile == "" || c.TLSKeyFile == "" {
			return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
		}
		return nil
	})

	if err := v.Error(); err != nil {
		return errors.ValidationError(err.Error())
	}

	return nil
}
