// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Session   SessionConfig   `koanf:"session"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	LLM       LLMConfig       `koanf:"llm"`
	Wikipedia WikipediaConfig `koanf:"wikipedia"`
	Agent     AgentConfig     `koanf:"agent"`
	Debug     DebugConfig     `koanf:"debug"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	CORS         CORSConfig    `koanf:"cors"`

	// RequestTimeout bounds handler work. It must stay below WriteTimeout so
	// the timeout response can still be written.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// CORSConfig holds cross-origin settings. Credentials are always allowed so
// that the session cookie travels with browser requests.
type CORSConfig struct {
	AllowedOrigins []string      `koanf:"allowed_origins"`
	MaxAge         time.Duration `koanf:"max_age"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SessionConfig holds login session settings.
type SessionConfig struct {
	CookieName    string        `koanf:"cookie_name"`
	Lifetime      time.Duration `koanf:"lifetime"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
	Secure        bool          `koanf:"secure"`
}

// DatabaseConfig holds the SQLite user store settings.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// AuthConfig holds password hashing settings.
type AuthConfig struct {
	BcryptCost int `koanf:"bcrypt_cost"`
}

// ClientConfig holds downstream HTTP client settings shared by every
// outbound integration.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// LLMConfig holds the chat completion API settings.
type LLMConfig struct {
	Client      ClientConfig `koanf:"client"`
	APIKey      string       `koanf:"api_key"`
	Model       string       `koanf:"model"`
	Temperature float64      `koanf:"temperature"`
}

// WikipediaConfig holds the MediaWiki API settings.
type WikipediaConfig struct {
	Client    ClientConfig `koanf:"client"`
	Sentences int          `koanf:"sentences"`
	UserAgent string       `koanf:"user_agent"`
}

// AgentConfig holds the tool-using agent settings.
type AgentConfig struct {
	MaxIterations       int    `koanf:"max_iterations"`
	MemoryWindow        int    `koanf:"memory_window"`
	TimezoneName        string `koanf:"timezone_name"`
	TimezoneOffsetHours int    `koanf:"timezone_offset_hours"`
}

// DebugConfig holds switches for diagnostic endpoints.
type DebugConfig struct {
	ViewDB bool `koanf:"view_db"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
