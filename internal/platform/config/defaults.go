package config

import "golang.org/x/crypto/bcrypt"

const (
	defaultServerPort = 8125

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultAgentMaxIterations  = 20
	defaultAgentMemoryWindow   = 5
	defaultTimezoneOffsetHours = -5
	defaultWikipediaSentences  = 2
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	m := map[string]any{
		"server.host":                 "0.0.0.0",
		"server.port":                 defaultServerPort,
		"server.read_timeout":         "5s",
		"server.write_timeout":        "90s",
		"server.request_timeout":      "80s",
		"server.idle_timeout":         "120s",
		"server.cors.max_age":         "5m",
		"server.cors.allowed_origins": []string{},

		"log.level":  "info",
		"log.format": "json",

		"session.cookie_name":    "session",
		"session.lifetime":       "30m",
		"session.sweep_interval": "1m",
		"session.secure":         false,

		"database.path": "chatbot_users.db",

		"auth.bcrypt_cost": bcrypt.DefaultCost,

		"llm.api_key":     "",
		"llm.model":       "gpt-4o",
		"llm.temperature": 0.7,

		"wikipedia.sentences":  defaultWikipediaSentences,
		"wikipedia.user_agent": "chatbot-service/1.0",

		"agent.max_iterations":        defaultAgentMaxIterations,
		"agent.memory_window":         defaultAgentMemoryWindow,
		"agent.timezone_name":         "EST",
		"agent.timezone_offset_hours": defaultTimezoneOffsetHours,

		"debug.view_db": false,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "chatbot-service",
	}

	clientDefaults(m, "llm.client", "https://api.openai.com/v1", "60s")
	clientDefaults(m, "wikipedia.client", "https://en.wikipedia.org", "10s")

	return m
}

// clientDefaults fills the shared outbound client settings under prefix.
func clientDefaults(m map[string]any, prefix, baseURL, timeout string) {
	m[prefix+".base_url"] = baseURL
	m[prefix+".timeout"] = timeout
	m[prefix+".retry.max_attempts"] = defaultRetryMaxAttempts
	m[prefix+".retry.initial_interval"] = "100ms"
	m[prefix+".retry.max_interval"] = "10s"
	m[prefix+".retry.multiplier"] = defaultRetryMultiplier
	m[prefix+".circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
	m[prefix+".circuit_breaker.timeout"] = "30s"
	m[prefix+".circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
	m[prefix+".rate_limit.requests_per_second"] = 0.0
	m[prefix+".rate_limit.burst_size"] = 1
}
