package testhelper

import (
	"errors"
	"testing"
)

func TestTestLogger(t *testing.T) {
	t.Run("Basic Logging", func(t *testing.T) {
		logger := NewTestLogger(true)

		logger.LogInfo("test info", map[string]interface{}{"key": "value"})
		logger.LogError(errors.New("test error"), "error message")
		logger.LogWarn("test warning", nil)
		logger.LogDebug("test debug", nil)

		if len(logger.GetInfoMessages()) != 1 {
			t.Error("Expected 1 info message")
		}
		if len(logger.GetErrorMessages()) != 1 {
			t.Error("Expected 1 error message")
		}
		if len(logger.GetWarnMessages()) != 1 {
			t.Error("Expected 1 warning message")
		}
		if len(logger.GetDebugMessages()) != 1 {
			t.Error("Expected 1 debug message")
		}
		if got := logger.GetErrorMessages()[0].Fields["error"]; got != "test error" {
			t.Errorf("Expected error field 'test error', got %v", got)
		}
	})

	t.Run("Debug Disabled", func(t *testing.T) {
		logger := NewTestLogger(false)

		logger.LogDebug("test debug", nil)
		if len(logger.GetDebugMessages()) != 0 {
			t.Error("Expected no debug messages when debug is disabled")
		}
	})

	t.Run("Field Merging", func(t *testing.T) {
		logger := NewTestLogger(true)
		withFields := logger.WithFields(map[string]interface{}{
			"base": "value",
		})

		withFields.LogInfo("test", map[string]interface{}{
			"additional": "value",
		})

		messages := logger.GetInfoMessages()
		if len(messages) != 1 {
			t.Fatal("Expected the derived logger to record into the parent")
		}
		if messages[0].Fields["base"] != "value" || messages[0].Fields["additional"] != "value" {
			t.Errorf("Expected merged fields, got %v", messages[0].Fields)
		}
	})

	t.Run("Clear Messages", func(t *testing.T) {
		logger := NewTestLogger(true)
		logger.LogInfo("test", nil)
		logger.ClearMessages()
		if len(logger.GetInfoMessages()) != 0 {
			t.Error("Expected no messages after clearing")
		}
	})
}
