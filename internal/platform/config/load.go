package config

import (
	"errors"
	"fmt"
	"io/fs"
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
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding the YAML files. Defaults to
// "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration for profile from these layers, later ones
// winning:
//
//  0. built-in defaults (defaults.go)
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. {configDir}/{profile}.local.yaml, if present (never committed)
//  4. APP_* environment variables
//
// Env var names are matched against the keys already loaded so that
// underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//	APP_DRAFTS_IDLE_TTL           -> drafts.idle_ttl
//	APP_I18N_DEFAULT_LOCALE       -> i18n.default_locale
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

	for _, layer := range yamlLayers(o.configDir, profile) {
		if layer.optional && !exists(layer.path) {
			continue
		}
		if err := k.Load(file.Provider(layer.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", layer.name, layer.path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
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

type yamlLayer struct {
	name     string
	path     string
	optional bool
}

func yamlLayers(dir, profile string) []yamlLayer {
	return []yamlLayer{
		{name: "base", path: filepath.Join(dir, "base.yaml")},
		{name: "profile", path: filepath.Join(dir, profile+".yaml")},
		{name: "local override", path: filepath.Join(dir, profile+".local.yaml"), optional: true},
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// envKeyMapper returns a koanf env transform that resolves
// APP_SERVER_READ_TIMEOUT to "server.read_timeout" when that key is known,
// and falls back to turning every underscore into a dot.
func envKeyMapper(knownKeys []string) func(key, value string) (string, any) {
	lookup := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if known, ok := lookup[key]; ok {
			return known, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}
}

// validateProfile rejects empty profiles and anything that could escape
// the config directory.
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
