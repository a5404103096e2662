package testhelper

import (
	"sync"

	"github.com/consensuslabs/model-builder/internal/logger"
)

// TestLogger records log entries so tests can assert on them. Loggers derived
// with WithFields share the parent's records.
type TestLogger struct {
	store        *logStore
	fields       map[string]interface{}
	debugEnabled bool
}

// LogEntry represents a log entry with its message and fields
type LogEntry struct {
	Message string
	Fields  map[string]interface{}
}

type logStore struct {
	mu            sync.RWMutex
	infoMessages  []LogEntry
	errorMessages []LogEntry
	warnMessages  []LogEntry
	debugMessages []LogEntry
}

// NewTestLogger creates a new test logger instance
func NewTestLogger(debugEnabled bool) *TestLogger {
	return &TestLogger{
		store:        &logStore{},
		fields:       make(map[string]interface{}),
		debugEnabled: debugEnabled,
	}
}

// LogInfo implements logger.Logger
func (t *TestLogger) LogInfo(msg string, fields map[string]interface{}) {
	t.record(&t.store.infoMessages, msg, fields)
}

// LogError implements logger.Logger
func (t *TestLogger) LogError(err error, msg string) error {
	fields := map[string]interface{}{}
	if err != nil {
		fields["error"] = err.Error()
	}
	t.record(&t.store.errorMessages, msg, fields)
	return err
}

// LogDebug implements logger.Logger
func (t *TestLogger) LogDebug(message string, fields map[string]interface{}) {
	if !t.debugEnabled {
		return
	}
	t.record(&t.store.debugMessages, message, fields)
}

// LogWarn implements logger.Logger
func (t *TestLogger) LogWarn(message string, fields map[string]interface{}) {
	t.record(&t.store.warnMessages, message, fields)
}

// WithFields implements logger.Logger
func (t *TestLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return &TestLogger{
		store:        t.store,
		fields:       t.mergeFields(fields),
		debugEnabled: t.debugEnabled,
	}
}

// Sync implements logger.Logger
func (t *TestLogger) Sync() error {
	return nil
}

// GetInfoMessages returns all info level messages
func (t *TestLogger) GetInfoMessages() []LogEntry {
	return t.snapshot(t.store.infoMessages)
}

// GetErrorMessages returns all error level messages
func (t *TestLogger) GetErrorMessages() []LogEntry {
	return t.snapshot(t.store.errorMessages)
}

// GetWarnMessages returns all warning level messages
func (t *TestLogger) GetWarnMessages() []LogEntry {
	return t.snapshot(t.store.warnMessages)
}

// GetDebugMessages returns all debug level messages
func (t *TestLogger) GetDebugMessages() []LogEntry {
	return t.snapshot(t.store.debugMessages)
}

// ClearMessages clears all logged messages
func (t *TestLogger) ClearMessages() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.infoMessages = nil
	t.store.errorMessages = nil
	t.store.warnMessages = nil
	t.store.debugMessages = nil
}

func (t *TestLogger) record(dst *[]LogEntry, msg string, fields map[string]interface{}) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	*dst = append(*dst, LogEntry{Message: msg, Fields: t.mergeFields(fields)})
}

func (t *TestLogger) snapshot(entries []LogEntry) []LogEntry {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	out := make([]LogEntry, len(entries))
	copy(out, entries)
	return out
}

// mergeFields merges the logger's base fields with the provided fields
func (t *TestLogger) mergeFields(fields map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(t.fields)+len(fields))
	for k, v := range t.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}
