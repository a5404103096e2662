package logger

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLoggerService adapts a zap.Logger to Logger. Scoped fields live on the
// zap logger itself, added with zap.Logger.With.
type zapLoggerService struct {
	logger *zap.Logger
}

// NewLogger creates a new Logger instance
func NewLogger(config *Config) (Logger, error) {
	zapConfig, err := buildZapConfig(config)
	if err != nil {
		return nil, err
	}

	zapLogger, err := zapConfig.Build(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %v", err)
	}
	return &zapLoggerService{logger: zapLogger}, nil
}

// NewNop returns a Logger that discards everything
func NewNop() Logger {
	return &zapLoggerService{logger: zap.NewNop()}
}

func buildZapConfig(config *Config) (zap.Config, error) {
	zapConfig := zap.NewProductionConfig()
	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := config.Level.zapLevel()
	if err != nil {
		return zapConfig, err
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if config.Format != "" {
		zapConfig.Encoding = config.Format
	}
	if config.Output != "" {
		zapConfig.OutputPaths = []string{config.Output}
	}
	return zapConfig, nil
}

// zapLevel maps a Level onto zap; the empty level means info.
func (l Level) zapLevel() (zapcore.Level, error) {
	if l == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(string(l))
	if err != nil {
		return level, fmt.Errorf("invalid log level: %v", err)
	}
	return level, nil
}

func (l *zapLoggerService) LogInfo(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

func (l *zapLoggerService) LogError(err error, msg string) error {
	if err != nil {
		l.logger.Error(msg, zap.Error(err))
	}
	return err
}

func (l *zapLoggerService) LogDebug(message string, fields map[string]interface{}) {
	l.logger.Debug(message, toZapFields(fields)...)
}

func (l *zapLoggerService) LogWarn(message string, fields map[string]interface{}) {
	l.logger.Warn(message, toZapFields(fields)...)
}

func (l *zapLoggerService) WithFields(fields map[string]interface{}) Logger {
	return &zapLoggerService{logger: l.logger.With(toZapFields(fields)...)}
}

func (l *zapLoggerService) Sync() error {
	return l.logger.Sync()
}

// toZapFields converts fields in key order so output is stable
func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		zapFields = append(zapFields, zap.Any(k, fields[k]))
	}
	return zapFields
}
