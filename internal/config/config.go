package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix  = "LIBCAT"
	configName = "config"
	configType = "toml"
	configDir  = ".libcat"
	seedFile   = "catalog.toml"

	SeedPathKey  = "catalog.seed_path"
	LogLevelKey  = "log.level"
	LogFormatKey = "log.format"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Config struct {
	SeedPath string
	Log      Log
}

type Log struct {
	Level  zapcore.Level
	Format string
}

// Load reads $HOME/.libcat/config.toml when present and applies LIBCAT_*
// environment overrides on top of the defaults.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(SeedPathKey, filepath.Join(homeDir, configDir, seedFile))
	v.SetDefault(LogLevelKey, zapcore.WarnLevel.String())
	v.SetDefault(LogFormatKey, LogFormatConsole)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	level, err := zapcore.ParseLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", LogLevelKey, err)
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString(LogFormatKey)))
	switch format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return Config{}, fmt.Errorf("unsupported %s %q", LogFormatKey, format)
	}

	seedPath := strings.TrimSpace(v.GetString(SeedPathKey))
	if seedPath == "" {
		return Config{}, errors.New("catalog seed path is empty")
	}

	return Config{
		SeedPath: seedPath,
		Log:      Log{Level: level, Format: format},
	}, nil
}

// LoadDotEnv loads environment files into the process environment. Missing
// files are ignored and variables already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	return nil
}
