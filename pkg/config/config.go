package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is built once at process start and passed into handlers and
// services; nothing reads the environment after Load returns.
type Config struct {
	Port        string
	DatabaseURL string

	// Provider credentials; each is required only for its own provider.
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
	// When true the Gemini key is sent as the ?key= query parameter instead
	// of the x-goog-api-key header.
	GeminiKeyViaQuery bool

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	AllowedOrigins []string
	ShieldMode     string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:      os.Getenv("GOOGLE_GENERATIVE_AI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiKeyViaQuery: getEnvBool("GEMINI_KEY_VIA_QUERY", false),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:         getEnv("JWT_ISSUER", "cvfolio"),
		JWTTTLMinutes:     getEnvInt("JWT_TTL_MINUTES", 60),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", "http://localhost:3000"),
		ShieldMode:        getEnv("SHIELD_MODE", "off"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key, def string) []string {
	v := getEnv(key, def)
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
