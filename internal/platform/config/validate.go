package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Session.validate(),
		c.Database.validate(),
		c.Auth.validate(),
		c.LLM.validate(),
		c.Wikipedia.validate(),
		c.Agent.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	} else if s.WriteTimeout > 0 && s.RequestTimeout >= s.WriteTimeout {
		errs = append(errs, fmt.Errorf("server.request_timeout (%s) must be less than server.write_timeout (%s)",
			s.RequestTimeout, s.WriteTimeout))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *SessionConfig) validate() error {
	var errs []error

	if s.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name must not be empty"))
	}
	if s.Lifetime <= 0 {
		errs = append(errs, errors.New("session.lifetime must be positive"))
	}
	if s.SweepInterval <= 0 {
		errs = append(errs, errors.New("session.sweep_interval must be positive"))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	if d.Path == "" {
		return errors.New("database.path must not be empty")
	}
	return nil
}

func (a *AuthConfig) validate() error {
	if a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	var errs []error

	if err := l.Client.validate("llm.client"); err != nil {
		errs = append(errs, err)
	}
	if l.APIKey == "" {
		errs = append(errs, errors.New("llm.api_key must not be empty (set APP_LLM_API_KEY or OPENAI_API_KEY)"))
	}
	if l.Model == "" {
		errs = append(errs, errors.New("llm.model must not be empty"))
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature must be between 0 and 2, got %g", l.Temperature))
	}

	return errors.Join(errs...)
}

func (w *WikipediaConfig) validate() error {
	var errs []error

	if err := w.Client.validate("wikipedia.client"); err != nil {
		errs = append(errs, err)
	}
	if w.Sentences < 1 {
		errs = append(errs, fmt.Errorf("wikipedia.sentences must be >= 1, got %d", w.Sentences))
	}

	return errors.Join(errs...)
}

func (a *AgentConfig) validate() error {
	var errs []error

	if a.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("agent.max_iterations must be >= 1, got %d", a.MaxIterations))
	}
	if a.MemoryWindow < 0 {
		errs = append(errs, fmt.Errorf("agent.memory_window must be >= 0, got %d", a.MemoryWindow))
	}
	if a.TimezoneOffsetHours < -12 || a.TimezoneOffsetHours > 14 {
		errs = append(errs, fmt.Errorf("agent.timezone_offset_hours must be between -12 and 14, got %d",
			a.TimezoneOffsetHours))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled", prefix))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
