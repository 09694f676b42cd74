package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("quiet logger drops everything", func(t *testing.T) {
		if New(false).Core().Enabled(zapcore.ErrorLevel) {
			t.Error("expected no-op logger")
		}
	})

	t.Run("verbose logger enables debug", func(t *testing.T) {
		if !New(true).Core().Enabled(zapcore.DebugLevel) {
			t.Error("expected debug level enabled")
		}
	})
}
