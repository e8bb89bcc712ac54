// Package config loads glossa settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".glossa.yaml"

var (
	errExpectedPointerToStruct = errors.New("expected a pointer to a struct")
	errUnsupportedFieldType    = errors.New("unsupported field type")
	errInvalidParallel         = errors.New("parallel must be at least 1")
	errInvalidLogFormat        = errors.New("log format must be console or json")
)

// Config holds the settings shared by every glossa command.
type Config struct {
	Lang      string `env:"GLOSSA_LANG"       yaml:"lang"`
	Dict      string `env:"GLOSSA_DICT"       yaml:"dict"`
	OutSuffix string `env:"GLOSSA_OUT_SUFFIX" yaml:"out_suffix"`
	Ext       string `env:"GLOSSA_EXT"        yaml:"ext"`
	Parallel  int    `env:"GLOSSA_PARALLEL"   yaml:"parallel"`

	// Reports is the run report directory; reports are written only when SaveReports is set.
	Reports     string `env:"GLOSSA_REPORTS"      yaml:"reports"`
	SaveReports bool   `env:"GLOSSA_SAVE_REPORTS" yaml:"save_reports"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the global zerolog logger.
type LogConfig struct {
	Level  string `env:"GLOSSA_LOG_LEVEL"  yaml:"level"`
	Format string `env:"GLOSSA_LOG_FORMAT" yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutSuffix: "_OUT",
		Ext:       ".py",
		Reports:   ".glossa-reports",
		Parallel:  1,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load applies defaults, then the YAML file at path, then GLOSSA_* variables.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := cfg.readYAML(path); err != nil {
		return Config{}, err
	}

	if err := readEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that cannot be repaired with a default.
func (cfg Config) Validate() error {
	if cfg.Parallel < 1 {
		return fmt.Errorf("%w, got %d", errInvalidParallel, cfg.Parallel)
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}

	switch cfg.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w, got %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}

func (cfg *Config) readYAML(path string) error {
	if path == "" {
		return nil
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		log.Debug().
			Str("path", path).
			Msg("No configuration file found, skipping")

		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Msg("Loaded configuration")

	return nil
}

// readEnv overwrites tagged fields with the environment variables that are set.
func readEnv(spec any, lookup func(string) (string, bool)) error {
	structValue := reflect.ValueOf(spec)
	if structValue.Kind() != reflect.Ptr || structValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structValue = structValue.Elem()
	structType := structValue.Type()

	for i := 0; i < structValue.NumField(); i++ {
		field := structValue.Field(i)
		fieldType := structType.Field(i)

		name := fieldType.Tag.Get("env")
		if name == "" {
			if field.Kind() == reflect.Struct {
				if err := readEnv(field.Addr().Interface(), lookup); err != nil {
					return err
				}
			}

			continue
		}

		value, exists := lookup(name)
		if !exists || !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Int:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", name, err)
			}

			field.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", name, err)
			}

			field.SetBool(b)
		default:
			return fmt.Errorf("%w: %s", errUnsupportedFieldType, field.Kind())
		}
	}

	return nil
}
