package config

import (
	"path/filepath"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	// AppName names the config directory and the environment variable prefix.
	AppName   = "toolbelt"
	EnvPrefix = "TOOLBELT"
)

type GitHub struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	MaxPages  int           `mapstructure:"max_pages"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type Stats struct {
	Limit  int    `mapstructure:"limit"`
	Sort   string `mapstructure:"sort"`
	Output string `mapstructure:"output"`
}

type Todo struct {
	File string `mapstructure:"file"`
}

// Config represents the application configuration
type Config struct {
	GitHub GitHub `mapstructure:"github"`
	Stats  Stats  `mapstructure:"stats"`
	Todo   Todo   `mapstructure:"todo"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		GitHub: GitHub{
			BaseURL:   "https://api.github.com",
			UserAgent: "toolbelt-github-stats",
			MaxPages:  100,
			Timeout:   30 * time.Second,
		},
		Stats: Stats{
			Limit:  10,
			Sort:   "stars",
			Output: "table",
		},
		Todo: Todo{
			File: "todos.json",
		},
	}
}

// LoadConfig reads the configuration file and TOOLBELT_* environment
// variables on top of DefaultConfig. If path is empty the standard locations
// are searched and a missing file is not an error.
// The returned path is the config file that was used, if any.
func LoadConfig(path string) (Config, string, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if path != "" || !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return Config{}, "", errors.WrapIff(err, "failed to read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, "", errors.Wrap(err, "failed to parse configuration")
	}

	return config, v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("github.base_url", d.GitHub.BaseURL)
	v.SetDefault("github.user_agent", d.GitHub.UserAgent)
	v.SetDefault("github.max_pages", d.GitHub.MaxPages)
	v.SetDefault("github.timeout", d.GitHub.Timeout)
	v.SetDefault("stats.limit", d.Stats.Limit)
	v.SetDefault("stats.sort", d.Stats.Sort)
	v.SetDefault("stats.output", d.Stats.Output)
	v.SetDefault("todo.file", d.Todo.File)
}

// configDirs returns the directories searched for a config file, in order.
func configDirs() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, AppName),
		filepath.Join("$HOME", "."+AppName),
	}
}
