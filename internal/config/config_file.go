package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file schema.
// Zero values leave the defaults untouched.
type FileConfig struct {
	Server struct {
		Port           string        `yaml:"port"`
		RequestTimeout time.Duration `yaml:"requestTimeout"`
		AllowedOrigins []string      `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Fetch struct {
		Timeout     time.Duration `yaml:"timeout"`
		UserAgent   string        `yaml:"userAgent"`
		MaxFileSize int64         `yaml:"maxFileSize"`
	} `yaml:"fetch"`

	PDF struct {
		Extractor string `yaml:"extractor"`
	} `yaml:"pdf"`
}

// LoadFileConfig reads and decodes a YAML configuration file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *FileConfig) applyTo(cfg *AppConfig) {
	if fc.Server.Port != "" {
		cfg.ServerPort = fc.Server.Port
	}
	if fc.Server.RequestTimeout > 0 {
		cfg.RequestTimeout = fc.Server.RequestTimeout
	}
	if len(fc.Server.AllowedOrigins) > 0 {
		cfg.CORSAllowedOrigins = fc.Server.AllowedOrigins
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		cfg.LogFormat = fc.Log.Format
	}
	if fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if fc.Fetch.UserAgent != "" {
		cfg.FetchUserAgent = fc.Fetch.UserAgent
	}
	if fc.Fetch.MaxFileSize > 0 {
		cfg.MaxFileSize = fc.Fetch.MaxFileSize
	}
	if fc.PDF.Extractor != "" {
		cfg.PDFExtractor = fc.PDF.Extractor
	}
}
