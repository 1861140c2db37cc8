package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as configuration.
const EnvPrefix = "CLASSIFILES_"

// Load builds a Config from the defaults, the file at path (skipped when
// path is empty) and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(err, errors.ErrNotFound, "config file %s not found", path)
			}
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to access config file %s", path)
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

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
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcess(&cfg)
	return &cfg, nil
}

// LoadOrDefault loads the configuration from explicit, or from the first
// existing default location when explicit is empty. It never fails: any
// problem is logged and the defaults (plus environment) are used. The
// returned string names the file used, empty for defaults.
func LoadOrDefault(explicit string) (*Config, string) {
	logger := logging.GetLogger("config")

	path := explicit
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		cfg, err := Load(path)
		if err == nil {
			logger.Info().Str("path", path).Msg("Using configuration from file")
			return cfg, path
		}
		logger.Warn().Err(err).Str("path", path).Msg("Ignoring config file")
	}

	logger.Info().Msg("Using default configuration")
	cfg, err := Load("")
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring environment overrides")
		return Default(), ""
	}
	return cfg, ""
}

func findConfigFile() string {
	for _, candidate := range paths.ConfigCandidates() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Parser()
	}
	return yaml.Parser()
}

// envKey maps CLASSIFILES_LIBMAGIC__DB_FILE to libmagic.db_file.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func postProcess(cfg *Config) {
	used := cfg.Libmagic.UsedFor[:0]
	for _, mime := range cfg.Libmagic.UsedFor {
		if mime = strings.TrimSpace(mime); mime != "" {
			used = append(used, mime)
		}
	}
	cfg.Libmagic.UsedFor = used
}
