package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all agent configuration
type Config struct {
	Mode string // "console" or "gateway"

	// Gateway settings
	Port           int
	RedisURL       string
	RedisPassword  string
	MaxSessions    int
	SessionTimeout time.Duration
	AllowedOrigins []string
	MaxBufferSize  int // Maximum audio buffer size in bytes per session

	// Extraction / speech backends
	GroqAPIKey       string
	GeminiAPIKey     string
	ExtractorBackend string // "groq", "gemini", or "none"
	ExtractTimeout   time.Duration
	ExtractModel     string
	GeminiModel      string
	WhisperModel     string

	// Text-to-speech for gateway replies
	TTSEnabled bool
	TTSModel   string
	TTSVoice   string

	// Booking backend
	BackendURL      string
	DefaultCity     string
	RejectPastDates bool
}

// LoadConfig loads configuration from environment variables with defaults
func LoadConfig() (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	config := &Config{
		Mode:             "console",
		Port:             8080,
		RedisURL:         "localhost:6379",
		RedisPassword:    "",
		MaxSessions:      100,
		SessionTimeout:   30 * time.Minute,
		AllowedOrigins:   []string{"*"},
		MaxBufferSize:    5 * 1024 * 1024, // 5MB default
		ExtractorBackend: "groq",
		ExtractTimeout:   15 * time.Second,
		ExtractModel:     "llama-3.1-8b-instant",
		GeminiModel:      "gemini-2.0-flash",
		WhisperModel:     "whisper-large-v3-turbo",
		TTSModel:         "playai-tts",
		TTSVoice:         "Fritz-PlayAI",
		BackendURL:       "http://localhost:5000/api/bookings",
		DefaultCity:      "Delhi,IN",
	}

	// Optional: AGENT_MODE ("console" or "gateway")
	if mode := os.Getenv("AGENT_MODE"); mode != "" {
		switch mode {
		case "console", "gateway":
			config.Mode = mode
		default:
			return nil, fmt.Errorf("invalid AGENT_MODE: must be 'console' or 'gateway'")
		}
	}

	config.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	config.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// Optional: EXTRACTOR_BACKEND ("groq", "gemini", or "none")
	if backend := os.Getenv("EXTRACTOR_BACKEND"); backend != "" {
		switch backend {
		case "groq", "gemini", "none":
			config.ExtractorBackend = backend
		default:
			return nil, fmt.Errorf("invalid EXTRACTOR_BACKEND: must be 'groq', 'gemini', or 'none'")
		}
	}

	switch config.ExtractorBackend {
	case "groq":
		if config.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY environment variable is required for the groq extractor")
		}
	case "gemini":
		if config.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required for the gemini extractor")
		}
	}

	// Gateway mode transcribes audio through Groq Whisper
	if config.Mode == "gateway" && config.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is required in gateway mode")
	}

	// Optional: PORT
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		config.Port = p
	}

	// Optional: REDIS_URL
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		config.RedisURL = redisURL
	}

	// Optional: REDIS_PASSWORD
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.RedisPassword = redisPassword
	}

	// Optional: MAX_SESSIONS
	if maxSessions := os.Getenv("MAX_SESSIONS"); maxSessions != "" {
		m, err := strconv.Atoi(maxSessions)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_SESSIONS: %w", err)
		}
		config.MaxSessions = m
	}

	// Optional: SESSION_TIMEOUT (in minutes)
	if timeout := os.Getenv("SESSION_TIMEOUT"); timeout != "" {
		t, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TIMEOUT: %w", err)
		}
		config.SessionTimeout = time.Duration(t) * time.Minute
	}

	// Optional: ALLOWED_ORIGINS (comma-separated)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = strings.Split(origins, ",")
	}

	// Optional: MAX_BUFFER_SIZE (in bytes)
	if bufferSize := os.Getenv("MAX_BUFFER_SIZE"); bufferSize != "" {
		b, err := strconv.Atoi(bufferSize)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_BUFFER_SIZE: %w", err)
		}
		config.MaxBufferSize = b
	}

	// Optional: EXTRACT_TIMEOUT (in seconds)
	if timeout := os.Getenv("EXTRACT_TIMEOUT"); timeout != "" {
		t, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid EXTRACT_TIMEOUT: %w", err)
		}
		config.ExtractTimeout = time.Duration(t) * time.Second
	}

	// Optional: EXTRACT_MODEL
	if model := os.Getenv("EXTRACT_MODEL"); model != "" {
		config.ExtractModel = model
	}

	// Optional: GEMINI_MODEL
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.GeminiModel = model
	}

	// Optional: WHISPER_MODEL
	if model := os.Getenv("WHISPER_MODEL"); model != "" {
		config.WhisperModel = model
	}

	// Optional: TTS_ENABLED
	if enabled := os.Getenv("TTS_ENABLED"); enabled != "" {
		e, err := strconv.ParseBool(enabled)
		if err != nil {
			return nil, fmt.Errorf("invalid TTS_ENABLED: %w", err)
		}
		config.TTSEnabled = e
	}

	// Optional: TTS_MODEL
	if model := os.Getenv("TTS_MODEL"); model != "" {
		config.TTSModel = model
	}

	// Optional: TTS_VOICE
	if voice := os.Getenv("TTS_VOICE"); voice != "" {
		config.TTSVoice = voice
	}

	// Optional: BACKEND_URL
	if url := os.Getenv("BACKEND_URL"); url != "" {
		config.BackendURL = url
	}

	// Optional: DEFAULT_CITY
	if city := os.Getenv("DEFAULT_CITY"); city != "" {
		config.DefaultCity = city
	}

	// Optional: REJECT_PAST_DATES
	if reject := os.Getenv("REJECT_PAST_DATES"); reject != "" {
		r, err := strconv.ParseBool(reject)
		if err != nil {
			return nil, fmt.Errorf("invalid REJECT_PAST_DATES: %w", err)
		}
		config.RejectPastDates = r
	}

	return config, nil
}
