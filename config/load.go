package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

// EnvPrefix prefixes environment overrides. Sections are separated by a
// double underscore: RICE_ASCII_ART__SOURCE=none.
const EnvPrefix = "RICE_"

const relPath = "rice/config.toml"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ErrConfigNotFound is returned when an explicitly given config file does
// not exist.
var ErrConfigNotFound = errors.New("config file not found")

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultTOML returns the commented default configuration file.
func DefaultTOML() []byte {
	return append([]byte(nil), defaultConfig...)
}

// DefaultPath returns $XDG_CONFIG_HOME/rice/config.toml, or the platform
// equivalent.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, relPath)
}

// Load reads the configuration. An empty path means the default location,
// which is created with the defaults on first run. An explicit path must
// exist.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
		return load(path)
	}

	path = DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := bootstrap(path); err != nil {
			// Running with the defaults beats not running at all.
			log.Warn().Err(err).Str("path", path).Msg("could not create default config")
			return load("")
		}
	}
	return load(path)
}

// bootstrap writes the default configuration file.
func bootstrap(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	log.Info().Str("path", path).Msg("created default config file")
	return nil
}

// parserFor picks the parser by file extension. TOML is the default format;
// YAML files are accepted for users who keep their dotfiles in YAML.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. User file
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}
