package config

import (
	"fmt"

	"document-parser/internal/domain"
	"document-parser/internal/infra/httpfetch"
	"document-parser/internal/service"
	"document-parser/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	Fetcher         domain.DocumentFetcher
	Extractor       domain.TextExtractor
	DocumentService domain.DocumentService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewLogger(config.GetLogLevel(), config.GetLogFormat())
	return NewContainerWith(config, appLogger)
}

// NewContainerWith wires the container from an explicit config and logger.
func NewContainerWith(config domain.Config, appLogger domain.Logger) (*Container, error) {
	fetcher := httpfetch.New(
		httpfetch.WithTimeout(config.GetFetchTimeout()),
		httpfetch.WithUserAgent(config.GetFetchUserAgent()),
	)

	extractor, err := service.NewTextExtractor(domain.PDFExtractor(config.GetPDFExtractor()), appLogger)
	if err != nil {
		return nil, fmt.Errorf("init pdf extractor: %w", err)
	}

	documentService := service.NewDocumentService(fetcher, extractor, config.GetMaxFileSize(), appLogger)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		Fetcher:         fetcher,
		Extractor:       extractor,
		DocumentService: documentService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetDocumentService returns the document service instance
func (c *Container) GetDocumentService() domain.DocumentService {
	return c.DocumentService
}
