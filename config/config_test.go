package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so ambient shell state
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AGENT_MODE", "PORT", "REDIS_URL", "REDIS_PASSWORD", "MAX_SESSIONS",
		"SESSION_TIMEOUT", "ALLOWED_ORIGINS", "MAX_BUFFER_SIZE",
		"GROQ_API_KEY", "GEMINI_API_KEY", "EXTRACTOR_BACKEND",
		"EXTRACT_TIMEOUT", "EXTRACT_MODEL", "GEMINI_MODEL", "WHISPER_MODEL",
		"TTS_ENABLED", "TTS_MODEL", "TTS_VOICE",
		"BACKEND_URL", "DEFAULT_CITY", "REJECT_PAST_DATES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Mode)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, 100, cfg.MaxSessions)
	assert.Equal(t, 30*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*1024*1024, cfg.MaxBufferSize)
	assert.Equal(t, "groq", cfg.ExtractorBackend)
	assert.Equal(t, 15*time.Second, cfg.ExtractTimeout)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.ExtractModel)
	assert.Equal(t, "whisper-large-v3-turbo", cfg.WhisperModel)
	assert.False(t, cfg.TTSEnabled)
	assert.Equal(t, "http://localhost:5000/api/bookings", cfg.BackendURL)
	assert.Equal(t, "Delhi,IN", cfg.DefaultCity)
	assert.False(t, cfg.RejectPastDates)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AGENT_MODE", "gateway")
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TIMEOUT", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("EXTRACT_TIMEOUT", "3")
	t.Setenv("TTS_ENABLED", "true")
	t.Setenv("REJECT_PAST_DATES", "true")
	t.Setenv("DEFAULT_CITY", "Mumbai,IN")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gateway", cfg.Mode)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ExtractTimeout)
	assert.True(t, cfg.TTSEnabled)
	assert.True(t, cfg.RejectPastDates)
	assert.Equal(t, "Mumbai,IN", cfg.DefaultCity)
}

func TestLoadConfigExtractorBackendValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXTRACTOR_BACKEND", "llamafile")
	_, err := LoadConfig()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("EXTRACTOR_BACKEND", "groq")
	_, err = LoadConfig()
	assert.Error(t, err, "groq backend without GROQ_API_KEY")

	clearEnv(t)
	t.Setenv("EXTRACTOR_BACKEND", "gemini")
	_, err = LoadConfig()
	assert.Error(t, err, "gemini backend without GEMINI_API_KEY")

	clearEnv(t)
	t.Setenv("EXTRACTOR_BACKEND", "gemini")
	t.Setenv("GEMINI_API_KEY", "test-key")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.ExtractorBackend)
}

func TestLoadConfigNoExtractor(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXTRACTOR_BACKEND", "none")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.ExtractorBackend)
}

func TestLoadConfigGatewayRequiresGroqKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("AGENT_MODE", "gateway")
	t.Setenv("EXTRACTOR_BACKEND", "none")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"AGENT_MODE", "daemon"},
		{"PORT", "not-a-number"},
		{"MAX_SESSIONS", "many"},
		{"SESSION_TIMEOUT", "soon"},
		{"MAX_BUFFER_SIZE", "big"},
		{"EXTRACT_TIMEOUT", "fast"},
		{"TTS_ENABLED", "maybe"},
		{"REJECT_PAST_DATES", "sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GROQ_API_KEY", "test-key")
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
