package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// unset clears key for the duration of the test
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestGetEnv(t *testing.T) {
	t.Run("unset falls back to default", func(t *testing.T) {
		unset(t, EnvItemsPath)
		assert.Equal(t, "fallback.json", getEnv(EnvItemsPath, "fallback.json"))
	})

	t.Run("empty value is kept", func(t *testing.T) {
		t.Setenv(EnvItemsPath, "")
		assert.Empty(t, getEnv(EnvItemsPath, "fallback.json"))
	})
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"plain", "512", 512},
		{"zero", "0", 0},
		{"negative", "-3", -3},
		{"float", "1.5", 1000},
		{"text", "lots", 1000},
		{"empty", "", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPlayerCacheSize, tt.value)
			assert.Equal(t, tt.want, getEnvAsInt(EnvPlayerCacheSize, 1000))
		})
	}

	t.Run("unset", func(t *testing.T) {
		unset(t, EnvPlayerCacheSize)
		assert.Equal(t, 1000, getEnvAsInt(EnvPlayerCacheSize, 1000))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"minutes", "5m", 5 * time.Minute},
		{"compound", "1h30m", 90 * time.Minute},
		{"milliseconds", "250ms", 250 * time.Millisecond},
		{"zero disables", "0s", 0},
		{"no unit", "30", time.Hour},
		{"garbage", "soon", time.Hour},
		{"empty", "", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvCatalogReload, tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration(EnvCatalogReload, time.Hour))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Run("unset yields nil", func(t *testing.T) {
		unset(t, EnvTrustedProxies)
		assert.Nil(t, getEnvAsList(EnvTrustedProxies))
	})

	t.Run("entries are trimmed and blanks dropped", func(t *testing.T) {
		t.Setenv(EnvTrustedProxies, " 10.0.0.1 ,127.0.0.1,, ::1 ")
		assert.Equal(t, []string{"10.0.0.1", "127.0.0.1", "::1"}, getEnvAsList(EnvTrustedProxies))
	})
}
