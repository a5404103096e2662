package config

import (
	"path/filepath"
)

const (
	// DefaultSeed is used when a document does not set base.seed
	DefaultSeed = 524
	// DefaultOutputDir is used when a document does not set base.output_dir
	DefaultOutputDir = "output"
)

// BaseConfig represents the identity and run parameters of one pipeline run
type BaseConfig struct {
	Name      string `mapstructure:"name" yaml:"name" json:"name" toml:"name"`
	Seed      int    `mapstructure:"seed" yaml:"seed" json:"seed" toml:"seed"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir" json:"output_dir" toml:"output_dir"`
}

// PipelineConfig represents the full configuration of one pipeline invocation
type PipelineConfig struct {
	Base BaseConfig `mapstructure:"base" yaml:"base" json:"base" toml:"base"`
}

// ToMap returns the raw mapping form of the config
func (b BaseConfig) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"name":       b.Name,
		"seed":       b.Seed,
		"output_dir": b.OutputDir,
	}
}

// ToMap returns the raw mapping form of the config
func (p PipelineConfig) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"base": p.Base.ToMap(),
	}
}

// OutputPath is the run directory provisioned during construction
func (p PipelineConfig) OutputPath() string {
	return filepath.Join(p.Base.OutputDir, p.Base.Name)
}

// NewBaseConfig validates fields against the base schema and applies defaults.
func NewBaseConfig(fields map[string]interface{}, opts ...SchemaOption) (BaseConfig, error) {
	var cfg BaseConfig
	normalized, err := baseSchema.apply(fields, newSchemaOptions(opts))
	if err != nil {
		return cfg, err
	}
	if err := decode(normalized, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewPipelineConfig validates fields against the pipeline schema and then
// makes sure the run directory join(base.output_dir, base.name) exists.
// Nothing is created when validation fails.
func NewPipelineConfig(fields map[string]interface{}, opts ...SchemaOption) (*PipelineConfig, error) {
	normalized, err := pipelineSchema.apply(fields, newSchemaOptions(opts))
	if err != nil {
		return nil, err
	}

	var cfg PipelineConfig
	if err := decode(normalized, &cfg); err != nil {
		return nil, err
	}

	if err := ensureDir(cfg.OutputPath()); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewPipelineConfigFromBase wraps an already-built BaseConfig.
func NewPipelineConfigFromBase(base BaseConfig, opts ...SchemaOption) (*PipelineConfig, error) {
	return NewPipelineConfig(map[string]interface{}{"base": base}, opts...)
}
