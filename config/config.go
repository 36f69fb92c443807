// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	Redis    RedisConfig
	Routes   RoutesConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// SupabaseConfig holds the hosted database/auth provider configuration.
// URL and AnonKey are required for all data access; JWTSecret is used to
// validate provider-issued access tokens locally on API requests.
type SupabaseConfig struct {
	URL             string
	AnonKey         string
	JWTSecret       string
	SessionCookie   string
	RefreshCookie   string
	VerifierCookie  string
	RefreshInterval time.Duration
}

// RedisConfig holds Redis configuration for the login rate limiter.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RoutesConfig holds the gated route surface.
type RoutesConfig struct {
	ProtectedPrefix string
	AuthPath        string
	CallbackPath    string
}

// CORSConfig holds cross-origin settings for the dashboard frontend.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Supabase: SupabaseConfig{
			URL:             getEnv("SUPABASE_URL", ""),
			AnonKey:         getEnv("SUPABASE_ANON_KEY", ""),
			JWTSecret:       getEnv("SUPABASE_JWT_SECRET", ""),
			SessionCookie:   getEnv("SESSION_COOKIE_NAME", "sb-access-token"),
			RefreshCookie:   getEnv("REFRESH_COOKIE_NAME", "sb-refresh-token"),
			VerifierCookie:  getEnv("VERIFIER_COOKIE_NAME", "sb-code-verifier"),
			RefreshInterval: getEnvAsDuration("SESSION_REFRESH_INTERVAL", 10*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Routes: RoutesConfig{
			ProtectedPrefix: getEnv("PROTECTED_PREFIX", "/dashboard"),
			AuthPath:        getEnv("AUTH_PATH", "/auth"),
			CallbackPath:    getEnv("AUTH_CALLBACK_PATH", "/auth/callback"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{getEnv("FRONTEND_ORIGIN", "http://localhost:5173")},
		},
	}
}

// IsProviderConfigured reports whether the hosted provider endpoint and key
// are both present. When false, data access is short-circuited with a
// configuration error instead of a generic failure.
func (c *Config) IsProviderConfigured() bool {
	return c.Supabase.URL != "" && c.Supabase.AnonKey != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
