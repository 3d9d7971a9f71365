package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PULSEBOARD_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("PULSEBOARD_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PULSEBOARD_MISSING_KEY", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PULSEBOARD_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("PULSEBOARD_TEST_INT", 7))

	t.Setenv("PULSEBOARD_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("PULSEBOARD_TEST_INT", 7))

	assert.Equal(t, 7, GetEnvInt("PULSEBOARD_MISSING_INT", 7))
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		value    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.value)
		assert.Equal(t, tt.expected, GetLogLevel())
	}
}

func TestLoadEnvWithoutFiles(t *testing.T) {
	// Should not panic when no .env files exist
	LoadEnv(logrus.New())
	LoadEnv(nil)
}
