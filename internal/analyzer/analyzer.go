// Package analyzer holds the DataAnalyzer, the consumer of a validated
// pipeline configuration.
package analyzer

import (
	"errors"

	"github.com/consensuslabs/model-builder/internal/config"
	"github.com/consensuslabs/model-builder/internal/logger"
	"github.com/google/uuid"
)

// ErrNilConfig is returned when an analyzer is built without a configuration
var ErrNilConfig = errors.New("analyzer: pipeline configuration is required")

// DataAnalyzer is bound to exactly one pipeline configuration
type DataAnalyzer struct {
	config config.PipelineConfig
	runID  uuid.UUID
	logger logger.Logger
}

// New creates a DataAnalyzer for cfg. Each analyzer gets its own run ID.
func New(cfg *config.PipelineConfig, log logger.Logger) (*DataAnalyzer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if log == nil {
		log = logger.NewNop()
	}

	runID := uuid.New()
	a := &DataAnalyzer{
		config: *cfg,
		runID:  runID,
		logger: log.WithFields(map[string]interface{}{
			"runID": runID.String(),
			"run":   cfg.Base.Name,
		}),
	}
	a.logger.LogInfo("DataAnalyzer initialized", map[string]interface{}{
		"seed":       cfg.Base.Seed,
		"outputPath": cfg.OutputPath(),
	})
	return a, nil
}

// Config returns a copy of the analyzer's configuration
func (a *DataAnalyzer) Config() config.PipelineConfig {
	return a.config
}

// RunID identifies this analyzer instance in logs and artifacts
func (a *DataAnalyzer) RunID() uuid.UUID {
	return a.runID
}

// OutputPath is the run directory provisioned by the configuration
func (a *DataAnalyzer) OutputPath() string {
	return a.config.OutputPath()
}
