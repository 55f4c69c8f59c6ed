package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EnvStorageDir overrides storage_dir.
	EnvStorageDir = "BUSY_BEE_STORAGE_DIR"
	// EnvLogLevel overrides log_level.
	EnvLogLevel = "BUSY_BEE_LOG_LEVEL"
	// EnvConfigPath points to an alternative config file.
	EnvConfigPath = "BUSY_BEE_CONFIG"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// Config is the root configuration for busy-bee, stored in
// <user config dir>/busy-bee/config.yaml.
type Config struct {
	// StorageDir holds one file per recorded day. Empty means ~/.busy-bee.
	StorageDir string `yaml:"storage_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# busy-bee configuration
#
# All settings are optional. Environment variables take precedence:
#   BUSY_BEE_STORAGE_DIR, BUSY_BEE_LOG_LEVEL
# and the --storage-dir flag takes precedence over both.

# Directory holding one file per recorded day (YYYY-MM-DD.csv).
# Leave empty to use ~/.busy-bee.
storage_dir: ""

# Diagnostic output on stderr: debug, info, warn or error.
log_level: info
`

func defaultConfig() Config {
	return Config{LogLevel: DefaultLogLevel}
}

// FilePath returns the config file location, honouring BUSY_BEE_CONFIG.
func FilePath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return filepath.Clean(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "busy-bee", "config.yaml"), nil
}

// Load reads the config file, creating it with annotated defaults on first
// run, and applies environment overrides. When no config location can be
// determined the defaults are used.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		slog.Warn("using default configuration", "error", err)
		return applyEnv(defaultConfig()), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path and applies environment overrides. A
// missing file is created from the template and yields the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := writeDefault(path); writeErr != nil {
			slog.Warn("could not create config file", "path", path, "error", writeErr)
		}
		return applyEnv(defaultConfig()), nil
	}
	if err != nil {
		return applyEnv(defaultConfig()), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return applyEnv(defaultConfig()), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if dir := strings.TrimSpace(os.Getenv(EnvStorageDir)); dir != "" {
		cfg.StorageDir = dir
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogLevel = level
	}
	return cfg
}

// ParseLevel maps a configured level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
