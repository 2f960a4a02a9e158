package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Database config
	DBPath string

	// HTTP config
	Port     string
	UseHTTPS bool

	// Session config
	SessionLifetime int64 // seconds

	// Auth config
	VerifyPassword bool // when false, a matching login id is enough (legacy behavior)

	// Optional OIDC SSO config
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCCallbackURL  string
}

// Load reads the application configuration from environment variables
func Load() Config {
	return Config{
		DBPath:           getEnv("DB_PATH", "hisadmin.db"),
		Port:             getEnv("PORT", "3000"),
		UseHTTPS:         getEnvAsBool("USE_HTTPS", false),
		SessionLifetime:  getEnvAsInt64("SESSION_LIFETIME", 24*60*60),
		VerifyPassword:   getEnvAsBool("AUTH_VERIFY_PASSWORD", false),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCCallbackURL:  getEnv("OIDC_CALLBACK_URL", ""),
	}
}

// OIDCEnabled reports whether the optional SSO login path is configured
func (c Config) OIDCEnabled() bool {
	return c.OIDCIssuer != ""
}

// SessionTTL returns the session lifetime as a duration
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionLifetime) * time.Second
}

// Helper function to get environment variable with fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get integer environment variable with fallback
func getEnvAsInt64(key string, fallback int64) int64 {
	if value, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get boolean environment variable with fallback
func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
