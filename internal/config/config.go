// Package config loads the dices configuration.
//
// Sources, highest priority first: command line flags, DICES_* environment variables
// (including those set by .env files), the YAML config file, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"dices/internal/dice"
	"dices/internal/output"
	"dices/pkg/dicetypes"
)

// Configuration keys, shared with the command line flags.
const (
	KeyLogLevel     = "log-level"
	KeyLogFile      = "log-file"
	KeyTestMode     = "test-mode"
	KeyAliasFile    = "alias-file"
	KeyConfig       = "config"
	KeySeed         = "seed"
	KeySampler      = "sampler"
	KeyStrict       = "strict"
	KeyMaxRecursion = "max-recursion"
	KeyPrompt       = "prompt"
	KeyOutput       = "output"
	KeyPlain        = "plain"
	KeyJSON         = "json"
	KeyHistoryFile  = "history-file"
)

// EnvPrefix prefixes every environment variable read by dices.
const EnvPrefix = "DICES"

// DefaultPrompt is the interactive prompt.
const DefaultPrompt = "Dices> "

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved configuration of one run.
type Config struct {
	LogLevel string
	LogFile  string
	TestMode bool

	// AliasFile is the alias file to load; AliasFileRequired is set when the user named it.
	AliasFile         string
	AliasFileRequired bool
	HistoryFile       string

	Prompt       string
	MaxRecursion int
	Sampler      dice.Sampler
	Strict       bool
	Seed         int64
	Output       output.Mode
}

// CompilerConfig returns the compiler settings.
func (c *Config) CompilerConfig() dicetypes.CompilerConfig {
	return dicetypes.CompilerConfig{MaxRecursion: c.MaxRecursion}
}

// RollerOptions returns the roller options matching the configuration.
func (c *Config) RollerOptions() []dice.Option {
	opts := []dice.Option{dice.WithSampler(c.Sampler)}
	if c.Strict {
		opts = append(opts, dice.Strict())
	}
	return opts
}

// Dir returns the configuration directory, $HOME/.config/dices.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dices"), nil
}

// SetDefaults registers defaults and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeySampler, dice.SamplerDirect.String())
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyMaxRecursion, dicetypes.DefaultMaxRecursion)
	v.SetDefault(KeyPrompt, DefaultPrompt)
	v.SetDefault(KeyOutput, "auto")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// LoadDotEnv loads the .env files that exist among paths into the process environment.
// Variables already set are kept, so earlier paths win over later ones.
func LoadDotEnv(paths ...string) ([]string, error) {
	var loaded []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}

// ReadFile reads the config file named by the config key, or config.yaml in dir when it
// exists. An explicitly named file must exist.
func ReadFile(v *viper.Viper, dir string) error {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load resolves and validates the configuration held by v. dir is the configuration
// directory used for default paths.
func Load(v *viper.Viper, dir string) (*Config, error) {
	cfg := &Config{
		LogLevel:     v.GetString(KeyLogLevel),
		LogFile:      v.GetString(KeyLogFile),
		TestMode:     v.GetBool(KeyTestMode),
		AliasFile:    v.GetString(KeyAliasFile),
		HistoryFile:  v.GetString(KeyHistoryFile),
		Prompt:       v.GetString(KeyPrompt),
		MaxRecursion: v.GetInt(KeyMaxRecursion),
		Strict:       v.GetBool(KeyStrict),
		Seed:         v.GetInt64(KeySeed),
	}

	cfg.AliasFileRequired = cfg.AliasFile != ""
	if cfg.AliasFile == "" && dir != "" {
		cfg.AliasFile = filepath.Join(dir, "aliases")
	}
	if cfg.HistoryFile == "" && dir != "" {
		cfg.HistoryFile = filepath.Join(dir, "history")
	}

	sampler, err := dice.ParseSampler(v.GetString(KeySampler))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Sampler = sampler

	if cfg.MaxRecursion < 1 {
		return nil, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, KeyMaxRecursion, cfg.MaxRecursion)
	}

	mode := strings.ToLower(v.GetString(KeyOutput))
	switch mode {
	case "auto", "plain", "styled", "json":
	default:
		return nil, fmt.Errorf("%w: %s must be auto, plain, styled or json, got %q", ErrInvalidConfig, KeyOutput, mode)
	}
	cfg.Output = output.ParseMode(mode)
	if v.GetBool(KeyPlain) {
		cfg.Output = output.ModePlain
	}
	if v.GetBool(KeyJSON) {
		cfg.Output = output.ModeJSON
	}
	if cfg.TestMode && cfg.Output != output.ModeJSON {
		cfg.Output = output.ModePlain
	}

	return cfg, nil
}
