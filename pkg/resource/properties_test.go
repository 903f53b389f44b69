package resource

import (
	"strings"
	"testing"
	"time"
)

const testProperties = `
test:
  name: ${TEST_APP_NAME:todo-api}
  port: ${TEST_APP_PORT:3000}
  url: http://${TEST_HOST:localhost}:${TEST_PORT:6379}/0
  empty: ${TEST_EMPTY:}
  literal: plain value
  timeout: ${TEST_TIMEOUT:15s}
  enabled: ${TEST_ENABLED:false}
  number: 42
  list:
    - a
    - b
`

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("TEST_SET", "from-env")

	tests := []struct {
		value string
		want  string
	}{
		{"${TEST_SET:default}", "from-env"},
		{"${TEST_UNSET_VARIABLE:default}", "default"},
		{"${TEST_UNSET_VARIABLE}", ""},
		{"${TEST_UNSET_VARIABLE:}", ""},
		{"prefix-${TEST_SET:x}-suffix", "prefix-from-env-suffix"},
		{"no placeholder", "no placeholder"},
	}

	for _, tt := range tests {
		if got := resolveEnvVariable(tt.value); got != tt.want {
			t.Errorf("resolveEnvVariable(%q): got %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_APP_PORT", "8080")
	t.Setenv("TEST_HOST", "redis")
	t.Setenv("TEST_ENABLED", "true")

	if err := Load(strings.NewReader(testProperties)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := GetString("test.name"); got != "todo-api" {
		t.Errorf("test.name: got %q", got)
	}
	if got := GetInt("test.port"); got != 8080 {
		t.Errorf("test.port: got %d, want 8080", got)
	}
	if got := GetString("test.url"); got != "http://redis:6379/0" {
		t.Errorf("test.url: got %q", got)
	}
	if got := GetStringOrDefault("test.empty", "fallback"); got != "fallback" {
		t.Errorf("test.empty: got %q, want fallback", got)
	}
	if got := GetString("test.literal"); got != "plain value" {
		t.Errorf("test.literal: got %q", got)
	}
	if got := GetDuration("test.timeout"); got != 15*time.Second {
		t.Errorf("test.timeout: got %v", got)
	}
	if !GetBool("test.enabled") {
		t.Error("test.enabled: got false, want true")
	}
	if got := GetInt("test.number"); got != 42 {
		t.Errorf("test.number: got %d", got)
	}
	if got := GetStringSlice("test.list"); len(got) != 2 || got[1] != "b" {
		t.Errorf("test.list: got %v", got)
	}
	if !IsSet("test.literal") || IsSet("test.absent") {
		t.Error("IsSet mismatch")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if err := Load(strings.NewReader("test: [unclosed")); err == nil {
		t.Error("Load: expected error for invalid yaml")
	}
}
