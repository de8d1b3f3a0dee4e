package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	quiet, err := New(false)
	if err != nil {
		t.Fatal(err)
	}
	if quiet.Core().Enabled(zapcore.InfoLevel) {
		t.Error("non-verbose logger should not log info")
	}
	if !quiet.Core().Enabled(zapcore.WarnLevel) {
		t.Error("non-verbose logger should log warnings")
	}

	loud, err := New(true)
	if err != nil {
		t.Fatal(err)
	}
	if !loud.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should log debug")
	}
}
