package logger

// Logger defines the interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	WithFields(fields map[string]interface{}) Logger
	Sync() error
}
