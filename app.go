package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/consensuslabs/model-builder/internal/analyzer"
	"github.com/consensuslabs/model-builder/internal/config"
	"github.com/consensuslabs/model-builder/internal/dataset"
	"github.com/consensuslabs/model-builder/internal/logger"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RunOptions selects the inputs of one pipeline run
type RunOptions struct {
	ConfigPath  string
	DataPath    string
	LabelColumn int
	PrintFormat string
}

// App holds all application dependencies
type App struct {
	out           io.Writer
	logger        logger.Logger
	configService config.Service
	opts          RunOptions
}

// NewApp creates a new application instance with all dependencies
func NewApp(out io.Writer, log logger.Logger, opts RunOptions, configOpts ...config.Option) *App {
	return &App{
		out:           out,
		logger:        log,
		configService: config.NewConfigService(log, configOpts...),
		opts:          opts,
	}
}

// Run loads the dataset and configuration and builds the analyzer
func (a *App) Run() (*analyzer.DataAnalyzer, error) {
	if a.opts.DataPath != "" {
		ds, err := dataset.LoadCSV(a.opts.DataPath, dataset.WithLabelColumn(a.opts.LabelColumn))
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		rows, cols := ds.Shape()
		fmt.Fprintf(a.out, "Data shape: (%d, %d)\n", rows, cols)
		fmt.Fprintf(a.out, "Target shape: (%d,)\n", ds.LabelShape())
	} else {
		a.logger.LogDebug("No dataset given, skipping load", nil)
	}

	cfg, err := a.configService.Load(a.opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	rendered, err := render(*cfg, a.opts.PrintFormat)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "Config loaded:\n%s", rendered)

	da, err := analyzer.New(cfg, a.logger)
	if err != nil {
		return nil, err
	}
	rendered, err = render(da.Config(), a.opts.PrintFormat)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "DataAnalyzer initialized with config:\n%s", rendered)

	return da, nil
}

// render encodes cfg for display. Output always ends with a newline.
func render(cfg config.PipelineConfig, format string) (string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case config.FormatYAML, "":
		data, err = yaml.Marshal(cfg)
	case config.FormatJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	case config.FormatTOML:
		data, err = toml.Marshal(cfg)
	default:
		return "", fmt.Errorf("unsupported print format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to render configuration: %v", err)
	}
	return string(data), nil
}
