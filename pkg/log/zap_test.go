package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("") })

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug): %v", err)
	}
	if !Enabled(zapcore.DebugLevel) {
		t.Error("debug: got disabled, want enabled")
	}

	if err := SetLevel("verbose"); err == nil {
		t.Error("SetLevel(verbose): expected error")
	}
	if !Enabled(zapcore.DebugLevel) {
		t.Error("unknown level changed the current level")
	}

	if err := SetLevel(""); err != nil {
		t.Fatalf("SetLevel(\"\"): %v", err)
	}
	if Enabled(zapcore.DebugLevel) || !Enabled(zapcore.InfoLevel) {
		t.Error("blank level: want info")
	}

	if err := SetLevel("ERROR"); err != nil {
		t.Fatalf("SetLevel(ERROR): %v", err)
	}
	if Enabled(zapcore.WarnLevel) {
		t.Error("error level: warn still enabled")
	}
}
