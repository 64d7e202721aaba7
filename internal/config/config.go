package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SchemeFile     string        // path to the scheme catalog file (.json or .yaml)
	ReloadInterval time.Duration // interval to reload the catalog (default: 24h)
	DefaultLang    string        // fallback language when a request omits ?lang

	// Auth
	JWTSecret string        // signing secret, required
	JWTIssuer string        // ex: "schemehub"
	JWTTTL    time.Duration // token lifetime (default: 24h)

	// CORS
	AllowedOrigins []string // browser origins allowed to call the API

	// Chatbot
	GeminiAPIKey string        // optional; empty disables model rewriting
	GeminiModel  string        // ex: "gemini-2.0-flash"
	ChatTimeout  time.Duration // upper bound on one model call

	// Rate limiting (auth endpoints)
	RateLimitBurst  int
	RateLimitPerMin int
	TrustProxy      bool // true => trust X-Forwarded-For headers

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("PORTAL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("PORTAL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("PORTAL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PORTAL_PRETTY_LOG", false),

		// Catalog
		SchemeFile:     getenv("PORTAL_SCHEME_FILE", "/app/schemes.json"),
		ReloadInterval: mustDuration("PORTAL_RELOAD_INTERVAL", 24*time.Hour),
		DefaultLang:    getenv("PORTAL_DEFAULT_LANG", "en"),

		// Auth
		JWTSecret: requireEnv("PORTAL_JWT_SECRET"),
		JWTIssuer: getenv("PORTAL_JWT_ISSUER", "schemehub"),
		JWTTTL:    mustDuration("PORTAL_JWT_TTL", 24*time.Hour),

		// CORS
		AllowedOrigins: splitAndTrim(getenv("PORTAL_ALLOWED_ORIGINS", "http://localhost:5173")),

		// Chatbot
		GeminiAPIKey: getenv("PORTAL_GEMINI_API_KEY", ""), // optional, empty = raw context answers
		GeminiModel:  getenv("PORTAL_GEMINI_MODEL", "gemini-2.0-flash"),
		ChatTimeout:  mustDuration("PORTAL_CHAT_TIMEOUT", 20*time.Second),

		// Rate limiting
		RateLimitBurst:  getenvInt("PORTAL_RATE_LIMIT_BURST", 10),
		RateLimitPerMin: getenvInt("PORTAL_RATE_LIMIT_PER_MIN", 30),
		TrustProxy:      mustBool("PORTAL_TRUST_PROXY", false),

		// Redis settings
		RedisAddr:             requireEnv("PORTAL_REDIS_ADDR"),
		RedisUser:             getenv("PORTAL_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("PORTAL_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("PORTAL_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("PORTAL_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: PORTAL_REDIS_PASSWORD is required when PORTAL_REDIS_PASSWORD_REQUIRED=true")
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
