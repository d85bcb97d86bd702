// Package config loads the demo command's configuration from an optional
// YAML file, an optional .env file and COMPOSEDEMO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KasperOmsK/compose/internal/logger"
	"github.com/KasperOmsK/compose/internal/workshop"
)

// EnvPrefix prefixes every environment variable the loader reads, e.g.
// COMPOSEDEMO_LOGGING_LEVEL or COMPOSEDEMO_WORKSHOP_VALUE.
const EnvPrefix = "COMPOSEDEMO"

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("invalid configuration")

// Config is the demo command's configuration.
type Config struct {
	Logging  logger.Config   `yaml:"logging" mapstructure:"logging"`
	Workshop workshop.Config `yaml:"workshop" mapstructure:"workshop"`
}

// FileSystem abstracts the file operations of the loader for tests.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load builds a Config from defaults, then the config file, then the
// environment (including variables loaded from the .env file). Later
// sources win. An explicitly named file that does not exist is an error.
func Load(opts ...LoaderOption) (Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = RealFileSystem{}
	}

	v := viper.New()
	setDefaults(v)

	if lc.ConfigFile != "" {
		if !lc.FileSystem.Exists(lc.ConfigFile) {
			return Config{}, fmt.Errorf("config file %s: %w", lc.ConfigFile, os.ErrNotExist)
		}
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", lc.ConfigFile, err)
		}
	}

	if lc.EnvFile != "" {
		if !lc.FileSystem.Exists(lc.EnvFile) {
			return Config{}, fmt.Errorf("env file %s: %w", lc.EnvFile, os.ErrNotExist)
		}
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", lc.EnvFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Logging.ApplyDefaults()

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	ws := workshop.DefaultConfig()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", logger.FormatConsole)
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.no_color", false)

	v.SetDefault("workshop.value", ws.Value)
	v.SetDefault("workshop.numbers", ws.Numbers)
	v.SetDefault("workshop.limit", ws.Limit)
	v.SetDefault("workshop.locale", ws.Locale)
	v.SetDefault("workshop.greet", ws.Greet)
	v.SetDefault("workshop.user.name", ws.User.Name)
	v.SetDefault("workshop.user.rename", ws.User.Rename)
	v.SetDefault("workshop.user.location", ws.User.Location)
	v.SetDefault("workshop.user.age", ws.User.Age)
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: failed %q", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(messages, "; "))
}
