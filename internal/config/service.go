package config

import (
	"os"

	apperrors "github.com/consensuslabs/model-builder/internal/errors"
	"github.com/consensuslabs/model-builder/internal/logger"
)

// ConfigService implements the Service interface
type ConfigService struct {
	logger     logger.Logger
	parser     Parser
	schemaOpts []SchemaOption
}

// Option configures a ConfigService
type Option func(*ConfigService)

// WithParser forces a document format instead of choosing one by extension
func WithParser(p Parser) Option {
	return func(s *ConfigService) {
		s.parser = p
	}
}

// WithStrict makes the service reject undeclared keys
func WithStrict() Option {
	return func(s *ConfigService) {
		s.schemaOpts = append(s.schemaOpts, WithStrictFields())
	}
}

// NewConfigService creates a new configuration service
func NewConfigService(logger logger.Logger, opts ...Option) *ConfigService {
	s := &ConfigService{
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the document at path and builds a validated PipelineConfig from
// it. Errors from reading the file are returned as they are, so a missing
// file satisfies errors.Is(err, fs.ErrNotExist).
func (s *ConfigService) Load(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parser := s.parser
	if parser == nil {
		parser = parserFor(path)
	}

	raw, err := parser.Parse(data)
	if err != nil {
		return nil, apperrors.NewParseError(path, parser.Format(), err)
	}
	s.logger.LogDebug("Configuration document parsed", map[string]interface{}{
		"path":   path,
		"format": parser.Format(),
		"keys":   len(raw),
	})

	cfg, err := NewPipelineConfig(raw, s.schemaOpts...)
	if err != nil {
		return nil, err
	}

	s.logger.LogInfo("Configuration loaded successfully", map[string]interface{}{
		"name":       cfg.Base.Name,
		"seed":       cfg.Base.Seed,
		"outputPath": cfg.OutputPath(),
	})
	return cfg, nil
}

// Load reads path with a ConfigService that does not log
func Load(path string) (*PipelineConfig, error) {
	return NewConfigService(logger.NewNop()).Load(path)
}
