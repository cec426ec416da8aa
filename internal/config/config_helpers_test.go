package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset uses default", "", 42},
		{"valid", "100", 100},
		{"invalid uses default", "not-a-number", 42},
		{"negative", "-10", -10},
		{"zero", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	def := 5 * time.Minute
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset uses default", "", def},
		{"minutes", "10m", 10 * time.Minute},
		{"complex", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", "33ms", 33 * time.Millisecond},
		{"invalid uses default", "not-a-duration", def},
		{"plain number uses default", "100", def},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", def))
		})
	}
}

func TestGetEnvAsUint64(t *testing.T) {
	t.Setenv("TEST_UINT_VAR", "18446744073709551615")
	assert.Equal(t, uint64(18446744073709551615), getEnvAsUint64("TEST_UINT_VAR", 1))

	t.Setenv("TEST_UINT_VAR", "-1")
	assert.Equal(t, uint64(1), getEnvAsUint64("TEST_UINT_VAR", 1))
}
