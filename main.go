package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/consensuslabs/model-builder/internal/config"
	"github.com/consensuslabs/model-builder/internal/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Flags fall back to MODEL_BUILDER_* variables, which may come from .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
		os.Exit(1)
	}

	if err := newCLI(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCLI(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "model-builder",
		Usage:     "validate a pipeline configuration and prepare its run directory",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the pipeline configuration document",
				Value:   "configs/config.yaml",
				EnvVars: []string{"MODEL_BUILDER_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "CSV dataset to load before the configuration",
				EnvVars: []string{"MODEL_BUILDER_DATA"},
			},
			&cli.IntFlag{
				Name:    "label-column",
				Usage:   "label column of the dataset, negative counts from the end",
				Value:   -1,
				EnvVars: []string{"MODEL_BUILDER_LABEL_COLUMN"},
			},
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "reject configuration keys the schema does not declare",
				EnvVars: []string{"MODEL_BUILDER_STRICT"},
			},
			&cli.StringFlag{
				Name:  "print-format",
				Usage: "format used to print the loaded configuration: yaml, json or toml",
				Value: config.FormatYAML,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   string(logger.InfoLevel),
				EnvVars: []string{"MODEL_BUILDER_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "console or json",
				Value:   "console",
				EnvVars: []string{"MODEL_BUILDER_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "log-output",
				Usage:   "stderr, stdout or a file path",
				Value:   "stderr",
				EnvVars: []string{"MODEL_BUILDER_LOG_OUTPUT"},
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	switch c.String("print-format") {
	case config.FormatYAML, config.FormatJSON, config.FormatTOML:
	default:
		return fmt.Errorf("invalid print-format %q: must be yaml, json or toml", c.String("print-format"))
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.Level(c.String("log-level")),
		Format: c.String("log-format"),
		Output: c.String("log-output"),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}
	defer log.Sync()

	var configOpts []config.Option
	if c.Bool("strict") {
		configOpts = append(configOpts, config.WithStrict())
	}

	app := NewApp(c.App.Writer, log, RunOptions{
		ConfigPath:  c.String("config"),
		DataPath:    c.String("data"),
		LabelColumn: c.Int("label-column"),
		PrintFormat: c.String("print-format"),
	}, configOpts...)

	_, err = app.Run()
	return err
}
