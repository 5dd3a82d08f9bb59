package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	httpapi "github.com/aussiebroadwan/cognitogw/internal/gateway/http"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Region       string `yaml:"region"`        // Required: AWS region of the user pool
	ClientID     string `yaml:"client_id"`     // Required: user pool app client ID
	ClientSecret string `yaml:"client_secret"` // Optional: app client secret, enables secret hashes
	UserPoolID   string `yaml:"user_pool_id"`  // Optional: only used for logging
	Endpoint     string `yaml:"endpoint"`      // Optional: overrides the provider endpoint, e.g. a local emulator

	MFALabel   string `yaml:"mfa_label"`    // Optional: account label in authenticator apps (default: NodeCognito)
	MFAIssuer  string `yaml:"mfa_issuer"`   // Optional: issuer shown in authenticator apps (default: AWS)
	QRCodeSize int    `yaml:"qr_code_size"` // Optional: enrollment QR code size in pixels (default: 256)

	BasePath       string   `yaml:"base_path"`       // Path prefix for gateway routes (default: /api)
	DisabledRoutes []string `yaml:"disabled_routes"` // Route names that are not served, e.g. signup

	Env                 string        `yaml:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        `yaml:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        `yaml:"log_format"`            // Log format (json, text) (default: json)
	Port                int           `yaml:"port"`                  // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration `yaml:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		BasePath:            "/api",
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file
// named by GATEWAY_CONFIG_FILE (if any), then environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("GATEWAY_CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Region = getEnvOrDefault("COGNITO_REGION", getEnvOrDefault("AWS_REGION", cfg.Region))
	cfg.ClientID = getEnvOrDefault("COGNITO_CLIENT_ID", cfg.ClientID)
	cfg.ClientSecret = getEnvOrDefault("COGNITO_CLIENT_SECRET", cfg.ClientSecret)
	cfg.UserPoolID = getEnvOrDefault("COGNITO_USER_POOL_ID", cfg.UserPoolID)
	cfg.Endpoint = getEnvOrDefault("COGNITO_ENDPOINT", cfg.Endpoint)
	cfg.MFALabel = getEnvOrDefault("COGNITO_MFA_LABEL", cfg.MFALabel)
	cfg.MFAIssuer = getEnvOrDefault("COGNITO_MFA_ISSUER", cfg.MFAIssuer)
	cfg.QRCodeSize = getEnvIntOrDefault("QR_CODE_SIZE", cfg.QRCodeSize)
	cfg.BasePath = getEnvOrDefault("GATEWAY_BASE_PATH", cfg.BasePath)
	if routes := os.Getenv("GATEWAY_DISABLED_ROUTES"); routes != "" {
		cfg.DisabledRoutes = splitList(routes)
	}
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)

	return cfg, nil
}

// Validate reports every missing or invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Region == "" {
		errs = append(errs, errors.New("COGNITO_REGION is required"))
	}
	if c.ClientID == "" {
		errs = append(errs, errors.New("COGNITO_CLIENT_ID is required"))
	}
	if c.Endpoint != "" {
		if u, err := url.Parse(c.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("COGNITO_ENDPOINT must be an absolute URL, got %q", c.Endpoint))
		}
	}
	if c.QRCodeSize < 0 {
		errs = append(errs, fmt.Errorf("QR_CODE_SIZE must not be negative, got %d", c.QRCodeSize))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}
	for _, name := range c.DisabledRoutes {
		if !slices.Contains(httpapi.RouteNames, name) {
			errs = append(errs, fmt.Errorf("unknown route in GATEWAY_DISABLED_ROUTES: %q", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DisabledRouteSet returns DisabledRoutes as a lookup set.
func (c Config) DisabledRouteSet() map[string]bool {
	set := make(map[string]bool, len(c.DisabledRoutes))
	for _, name := range c.DisabledRoutes {
		set[name] = true
	}
	return set
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
