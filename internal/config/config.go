// Package config resolves tamago settings from ~/.tamago/config.toml and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/tamago/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	StatePathKey        = "state.path"
	JournalPathKey      = "journal.path"
	ArchiveDirKey       = "archive.dir"
	AdminRolesKey       = "roles.admin"
	ContributorRolesKey = "roles.contributor"
	LogLevelKey         = "log.level"

	DefaultCaller = "owner"

	configDirName  = ".tamago"
	configFileName = "config.toml"
)

// Env holds the overrides read from the process environment.
type Env struct {
	Caller    string `env:"TAMAGO_CALLER"`
	LogLevel  string `env:"TAMAGO_LOG_LEVEL"`
	StatePath string `env:"TAMAGO_STATE_PATH"`
}

type Config struct {
	// Viper carries every resolved key and is handed to repository
	// constructors.
	Viper       *viper.Viper
	File        string
	Caller      domain.AccountID
	LogLevel    slog.Level
	JournalPath string
	ArchiveDir  string
}

func DefaultFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName, configFileName), nil
}

// Load reads file (DefaultFile when empty). A missing file yields the
// defaults.
func Load(file string) (*Config, error) {
	if file == "" {
		defaultFile, err := DefaultFile()
		if err != nil {
			return nil, err
		}
		file = defaultFile
	}

	var overrides Env
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return load(file, overrides)
}

func load(file string, overrides Env) (*Config, error) {
	dir := filepath.Dir(file)
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("toml")
	v.SetDefault(StatePathKey, filepath.Join(dir, "ledger.toml"))
	v.SetDefault(JournalPathKey, filepath.Join(dir, "events.db"))
	v.SetDefault(ArchiveDirKey, filepath.Join(dir, "archive"))
	v.SetDefault(AdminRolesKey, []string{DefaultCaller})
	v.SetDefault(ContributorRolesKey, []string{})
	v.SetDefault(LogLevelKey, "warn")

	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, fmt.Errorf("read config %s: %w", file, err)
	}

	if overrides.StatePath != "" {
		v.Set(StatePathKey, overrides.StatePath)
	}
	if overrides.LogLevel != "" {
		v.Set(LogLevelKey, overrides.LogLevel)
	}

	level, err := ParseLevel(v.GetString(LogLevelKey))
	if err != nil {
		return nil, err
	}

	caller := strings.TrimSpace(overrides.Caller)
	if caller == "" {
		caller = DefaultCaller
	}

	return &Config{
		Viper:       v,
		File:        file,
		Caller:      domain.AccountID(caller),
		LogLevel:    level,
		JournalPath: v.GetString(JournalPathKey),
		ArchiveDir:  v.GetString(ArchiveDirKey),
	}, nil
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func ParseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, domain.Errorf(domain.KindInvalidArgument, "unknown log level %q", raw)
	}
	return level, nil
}
