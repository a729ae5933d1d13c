package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"document-parser/internal/domain"
)

const (
	defaultServerPort     = "8080"
	defaultMaxFileSize    = 50 * 1024 * 1024 // 50MB
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultFetchTimeout   = 30 * time.Second
	defaultRequestTimeout = 60 * time.Second
	defaultUserAgent      = "document-parser/1.0"
)

// Local browser frontends allowed to call the API when CORS_ALLOWED_ORIGINS is unset.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:4173",
	"http://localhost:3000",
}

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	MaxFileSize        int64
	LogLevel           string
	LogFormat          string
	FetchTimeout       time.Duration
	RequestTimeout     time.Duration
	FetchUserAgent     string
	PDFExtractor       string
	CORSAllowedOrigins []string
}

// NewConfig creates a configuration from defaults, the optional CONFIG_FILE
// and the environment, in increasing order of precedence.
func NewConfig() (domain.Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
		fc.applyTo(cfg)
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaultConfig() *AppConfig {
	origins := make([]string, len(defaultAllowedOrigins))
	copy(origins, defaultAllowedOrigins)
	return &AppConfig{
		ServerPort:         defaultServerPort,
		MaxFileSize:        defaultMaxFileSize,
		LogLevel:           defaultLogLevel,
		LogFormat:          defaultLogFormat,
		FetchTimeout:       defaultFetchTimeout,
		RequestTimeout:     defaultRequestTimeout,
		FetchUserAgent:     defaultUserAgent,
		PDFExtractor:       string(domain.PDFExtractorFitz),
		CORSAllowedOrigins: origins,
	}
}

func applyEnv(cfg *AppConfig) {
	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	cfg.ServerPort = getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", cfg.ServerPort))
	cfg.MaxFileSize = getEnvInt64OrDefault("MAX_FILE_SIZE", cfg.MaxFileSize)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.FetchTimeout = getEnvDurationOrDefault("FETCH_TIMEOUT", cfg.FetchTimeout)
	cfg.RequestTimeout = getEnvDurationOrDefault("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.FetchUserAgent = getEnvOrDefault("FETCH_USER_AGENT", cfg.FetchUserAgent)
	cfg.PDFExtractor = strings.ToLower(getEnvOrDefault("PDF_EXTRACTOR", cfg.PDFExtractor))
	if origins := splitList(os.Getenv("CORS_ALLOWED_ORIGINS")); len(origins) > 0 {
		cfg.CORSAllowedOrigins = origins
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum number of bytes read from a remote document
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log output format, json or console
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetFetchTimeout returns the outbound HTTP client timeout
func (c *AppConfig) GetFetchTimeout() time.Duration {
	return c.FetchTimeout
}

// GetRequestTimeout returns the ceiling for a whole parse request
func (c *AppConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

// GetFetchUserAgent returns the User-Agent sent with outbound requests
func (c *AppConfig) GetFetchUserAgent() string {
	return c.FetchUserAgent
}

// GetPDFExtractor returns the configured extraction backend
func (c *AppConfig) GetPDFExtractor() string {
	return c.PDFExtractor
}

// GetCORSAllowedOrigins returns the origins allowed by the CORS policy
func (c *AppConfig) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
