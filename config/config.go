package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"github.com/futurehomeno/glamox-config-env/logger"
)

// file names searched for in the working directory, in order
const (
	TOMLName = "config_env.toml"
	YAMLName = "config_env.yaml"
)

// Configuration is the structure of config_env.toml to be parsed. It only
// controls the tool itself; package identity is fixed in the control package.
type Configuration struct {
	Log struct {
		Enable     bool   `toml:"enable" yaml:"enable"`
		File       string `toml:"file" yaml:"file"`
		Level      string `toml:"level" yaml:"level"`
		MaxSize    int    `toml:"max-size" yaml:"max-size"`
		MaxBackups int    `toml:"max-backups" yaml:"max-backups"`
		MaxAge     int    `toml:"max-age" yaml:"max-age"`
		Compress   bool   `toml:"compress" yaml:"compress"`
	} `toml:"log" yaml:"log"`
}

//go:embed config.toml
var defaultConfig string

// Default returns the embedded configuration
func Default() (Configuration, error) {
	var config Configuration
	if err := toml.NewDecoder(strings.NewReader(defaultConfig)).Decode(&config); err != nil {
		return config, fmt.Errorf("decode default config: %w", err)
	}
	return config, nil
}

// Load reads config_env.toml, or config_env.yaml if there is no toml file,
// from root over the embedded defaults. A missing file is not an error.
func Load(root string) (Configuration, error) {
	config, err := Default()
	if err != nil {
		return config, err
	}

	for _, name := range []string{TOMLName, YAMLName} {
		path := filepath.Join(root, name)

		file, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return config, fmt.Errorf("open %s: %w", path, err)
		}

		err = decode(name, file, &config)
		file.Close()
		if err != nil {
			return config, fmt.Errorf("decode %s: %w", path, err)
		}

		logger.Debugf("Read %s", path)
		break
	}

	if err := config.check(); err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func decode(name string, r io.Reader, config *Configuration) error {
	if filepath.Ext(name) == ".yaml" {
		return yaml.NewDecoder(r).Decode(config)
	}
	return toml.NewDecoder(r).Decode(config)
}

// check validates the log section of the config
func (c Configuration) check() error {
	var errs []error

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.Log.Enable && c.Log.File == "" {
		errs = append(errs, errors.New("log file must be set when file logging is enabled"))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, errors.New("log rotation values must not be negative"))
	}

	return errors.Join(errs...)
}

// LoggerOptions converts the log section into logger options. An
// unparseable level falls back to info.
func (c Configuration) LoggerOptions() logger.Options {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	opts := logger.Options{
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Compress:   c.Log.Compress,
		Level:      level,
	}
	if c.Log.Enable {
		opts.Filename = c.Log.File
	}

	return opts
}
