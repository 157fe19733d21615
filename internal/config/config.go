package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appName = "preloadquiz"

// Config holds application configuration loaded from files, environment
// variables and command-line flags.
type Config struct {
	Env        string   `mapstructure:"env"`        // local or production
	QuizDir    string   `mapstructure:"quiz_dir"`   // directory searched for quiz sources
	Extensions []string `mapstructure:"extensions"` // file extensions treated as quiz sources
	Log        Log      `mapstructure:"log"`
}

// Log configures the structured logger.
type Log struct {
	File  string `mapstructure:"file"`  // path, or "stderr"/"stdout"; empty means DefaultLogPath
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// flagKeys maps config keys to the persistent flag names that override them.
var flagKeys = map[string]string{
	"quiz_dir":  "dir",
	"log.file":  "log-file",
	"log.level": "log-level",
}

// Load reads configuration in increasing priority: defaults, config file,
// environment (PRELOADQUIZ_*), flags. An explicit configFile must exist;
// otherwise config.yaml is looked up in the working directory and then in
// $XDG_CONFIG_HOME/preloadquiz. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine; a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("env", "local")
	v.SetDefault("quiz_dir", ".")
	v.SetDefault("extensions", []string{".json", ".yaml", ".yml"})
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Extensions = splitExtensions(cfg.Extensions)
	return &cfg, nil
}

// splitExtensions accepts both list values and a single comma-separated
// string from the environment.
func splitExtensions(in []string) []string {
	var out []string
	for _, item := range in {
		for _, e := range strings.Split(item, ",") {
			e = strings.TrimSpace(e)
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			out = append(out, strings.ToLower(e))
		}
	}
	return out
}

func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName), nil
}

// DefaultLogPath resolves the log file path in priority order:
// 1. $XDG_STATE_HOME/preloadquiz/preloadquiz.log
// 2. ~/.local/state/preloadquiz/preloadquiz.log
// The parent directory is created if needed.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, appName, appName+".log")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
