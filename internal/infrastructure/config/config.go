// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnvWithPath("config.yaml")
//	port := cfg.Server.Port
//	samKey := cfg.SAM.APIKey
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSAMBaseURL is the SAM.gov opportunities search endpoint.
const DefaultSAMBaseURL = "https://api.sam.gov/opportunities/v2/search"

// Defaults applied to missing values.
const (
	DefaultPort       = 10000
	DefaultSAMTimeout = 30 * time.Second
)

// Config represents the entire application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	SAM           SAMConfig           `yaml:"sam"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds inbound HTTP settings
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"` // empty = allow all
}

// SAMConfig holds SAM.gov API configuration
type SAMConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Mock    bool          `yaml:"mock"` // serve sample data even when a key is set
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Mode selects where search results come from. It is decided once at
// startup and never re-checked per request.
type Mode int

const (
	// ModeUpstream calls the SAM.gov API.
	ModeUpstream Mode = iota
	// ModeMockNoCredential serves sample data because no API key is configured.
	ModeMockNoCredential
	// ModeMockExplicit serves sample data because mock mode was requested.
	ModeMockExplicit
)

func (m Mode) String() string {
	switch m {
	case ModeUpstream:
		return "upstream"
	case ModeMockNoCredential:
		return "mock-no-credential"
	case ModeMockExplicit:
		return "mock"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Mode derives the search mode from the SAM settings. A missing key always
// wins over the mock flag so the source tag reports the real reason.
func (c *Config) Mode() Mode {
	switch {
	case c.SAM.APIKey == "":
		return ModeMockNoCredential
	case c.SAM.Mock:
		return ModeMockExplicit
	default:
		return ModeUpstream
	}
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.SAM.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("sam.timeout must be positive: %s", c.SAM.Timeout))
	}
	if c.SAM.BaseURL == "" {
		errs = append(errs, errors.New("sam.base_url is empty"))
	}
	return errors.Join(errs...)
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${SAM_API_KEY})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvInt("PORT", DefaultPort),
			AllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		SAM: SAMConfig{
			APIKey:  os.Getenv("SAM_API_KEY"),
			BaseURL: getEnv("SAM_API_URL", DefaultSAMBaseURL),
			Timeout: getEnvDuration("SAM_TIMEOUT", DefaultSAMTimeout),
			Mock:    getEnvBool("SAM_MOCK", false),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadOrEnvWithPath tries to load from specified path, falls back to environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.SAM.BaseURL == "" {
		c.SAM.BaseURL = DefaultSAMBaseURL
	}
	if c.SAM.Timeout == 0 {
		c.SAM.Timeout = DefaultSAMTimeout
	}
	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = "info"
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = "text"
	}
}

// GetAPIKey retrieves an API key from config first, then tries multiple environment variable names
// Usage: GetAPIKey(cfg.SAM.APIKey, "SAM_API_KEY", "SAM_GOV_API_KEY")
func (c *Config) GetAPIKey(configValue string, envVarNames ...string) string {
	if configValue != "" {
		return configValue
	}

	for _, envVar := range envVarNames {
		if val := os.Getenv(envVar); val != "" {
			return val
		}
	}

	return ""
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var result int
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
