package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	profileEnv       = "APP_PROFILE"
	defaultConfigDir = "configs"
)

// fallbackEnv names conventional variables consulted for keys that are still
// empty once every layer has been applied.
var fallbackEnv = map[string]string{
	"llm.api_key": "OPENAI_API_KEY",
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// FromEnvironment loads the profile named by APP_PROFILE.
func FromEnvironment(opts ...Option) (*Config, error) {
	profile := os.Getenv(profileEnv)
	if profile == "" {
		return nil, fmt.Errorf("%s environment variable is required (e.g. local, dev, prod)", profileEnv)
	}
	return Load(profile, opts...)
}

// Load builds the configuration for profile. Later layers win:
//
//	built-in defaults
//	configs/base.yaml
//	configs/{profile}.yaml
//	APP_* environment variables
//
// Environment names are matched against the keys the earlier layers
// produced, so underscores inside a key survive:
//
//	APP_SESSION_SWEEP_INTERVAL        -> session.sweep_interval
//	APP_LLM_CLIENT_RETRY_MAX_ATTEMPTS -> llm.client.retry.max_attempts
//
// An empty llm.api_key is then taken from OPENAI_API_KEY.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(envProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	for key, name := range fallbackEnv {
		if k.String(key) != "" {
			continue
		}
		if val := os.Getenv(name); val != "" {
			if err := k.Set(key, val); err != nil {
				return nil, fmt.Errorf("setting %s from %s: %w", key, name, err)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// envProvider maps APP_* variables onto known keys. Unknown names fall back
// to treating every underscore as a separator.
func envProvider(knownKeys []string) *env.Env {
	lookup := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := lookup[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
