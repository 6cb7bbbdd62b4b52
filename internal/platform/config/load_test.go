package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/config"
)

const testAPIKey = "sk-test-0123456789abcdefghij"

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8125 {
		t.Errorf("Server.Port = %d, want 8125", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if !cfg.Debug.ViewDB {
		t.Error("Debug.ViewDB = false, want true for local")
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if len(cfg.Server.CORS.AllowedOrigins) != 2 {
		t.Errorf("len(Server.CORS.AllowedOrigins) = %d, want 2", len(cfg.Server.CORS.AllowedOrigins))
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Session.Secure {
		t.Error("Session.Secure = false, want true for prod")
	}
	if cfg.Debug.ViewDB {
		t.Error("Debug.ViewDB = true, want false for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Server.RequestTimeout != 80*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 80s (from base)", cfg.Server.RequestTimeout)
	}
	if cfg.Session.Lifetime != 30*time.Minute {
		t.Errorf("Session.Lifetime = %v, want 30m (from base)", cfg.Session.Lifetime)
	}
	if cfg.Agent.MaxIterations != 20 {
		t.Errorf("Agent.MaxIterations = %d, want 20 (from base)", cfg.Agent.MaxIterations)
	}
	if cfg.Agent.MemoryWindow != 5 {
		t.Errorf("Agent.MemoryWindow = %d, want 5 (from base)", cfg.Agent.MemoryWindow)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("LLM.Model = %q, want \"gpt-4o\" (from base)", cfg.LLM.Model)
	}
	if cfg.Wikipedia.Client.RateLimit.RequestsPerSecond != 10 {
		t.Errorf("Wikipedia.Client.RateLimit.RequestsPerSecond = %g, want 10 (from base)",
			cfg.Wikipedia.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)
	t.Setenv("APP_AGENT_MAX_ITERATIONS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Agent.MaxIterations != 7 {
		t.Errorf("Agent.MaxIterations = %d, want 7 (env override)", cfg.Agent.MaxIterations)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)
	t.Setenv("APP_LLM_CLIENT_RETRY_MAX_ATTEMPTS", "6")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.LLM.Client.Retry.MaxAttempts != 6 {
		t.Errorf("LLM.Client.Retry.MaxAttempts = %d, want 6 (env override)", cfg.LLM.Client.Retry.MaxAttempts)
	}
}

func TestLoad_OpenAIKeyFallback(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", testAPIKey)

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.LLM.APIKey != testAPIKey {
		t.Error("LLM.APIKey was not populated from OPENAI_API_KEY")
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := config.Load("local"); err == nil {
		t.Fatal("Load returned nil error, want error for missing API key")
	}
}

func TestFromEnvironment_UsesAppProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)
	t.Setenv("APP_PROFILE", "prod")

	cfg, err := config.FromEnvironment()
	if err != nil {
		t.Fatalf("FromEnvironment() error: %v", err)
	}
	if !cfg.Session.Secure {
		t.Error("Session.Secure = false, want true (prod profile)")
	}
}

func TestFromEnvironment_RequiresAppProfile(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	if _, err := config.FromEnvironment(); err == nil {
		t.Fatal("FromEnvironment() returned nil error, want error for missing APP_PROFILE")
	}
}

func TestLoad_ExplicitKeyBeatsOpenAIFallback(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)
	t.Setenv("OPENAI_API_KEY", "sk-other-0123456789abcdefghij")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LLM.APIKey != testAPIKey {
		t.Error("LLM.APIKey was overridden by OPENAI_API_KEY")
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LLM_API_KEY", testAPIKey)

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_BcryptCostOutOfRange(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Auth.BcryptCost = 64

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for bcrypt cost 64")
	}
}

func TestValidate_ZeroMaxIterations(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Agent.MaxIterations = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for max_iterations=0")
	}
}

func TestValidate_RateLimitWithoutBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Wikipedia.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for rate limit without burst")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_RequestTimeoutBelowWriteTimeout(t *testing.T) {
	t.Parallel()

	tests := map[string]time.Duration{
		"zero":                  0,
		"equal to write":        90 * time.Second,
		"longer than the write": 2 * time.Minute,
	}
	for name, timeout := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			cfg.Server.RequestTimeout = timeout

			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() returned nil, want error for request_timeout=%s", timeout)
			}
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func validClient(baseURL string) config.ClientConfig {
	return config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     10 * time.Second,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8125,
			ReadTimeout:  5 * time.Second,
			WriteTimeout:   90 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 80 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Session: config.SessionConfig{
			CookieName:    "session",
			Lifetime:      30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Database: config.DatabaseConfig{Path: "chatbot_users.db"},
		Auth:     config.AuthConfig{BcryptCost: 10},
		LLM: config.LLMConfig{
			Client: validClient("https://api.openai.com/v1"),
			APIKey: testAPIKey,
			Model:  "gpt-4o",
		},
		Wikipedia: config.WikipediaConfig{
			Client:    validClient("https://en.wikipedia.org"),
			Sentences: 2,
		},
		Agent: config.AgentConfig{
			MaxIterations:       20,
			MemoryWindow:        5,
			TimezoneName:        "EST",
			TimezoneOffsetHours: -5,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
