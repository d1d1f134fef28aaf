package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SyncMethodRclone = "rclone"
	SyncMethodWebDAV = "webdav"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Sync       SyncConfig       `mapstructure:"sync"`
	Reload     ReloadConfig     `mapstructure:"reload"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

type DictionaryConfig struct {
	Path string `mapstructure:"path" validate:"required,parentdir"`
}

type SyncConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Method        string        `mapstructure:"method" validate:"oneof=rclone webdav"`
	RetryAttempts uint          `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	Rclone        RcloneConfig  `mapstructure:"rclone"`
	WebDAV        WebDAVConfig  `mapstructure:"webdav"`
}

type RcloneConfig struct {
	Command string `mapstructure:"command" validate:"required,executable"`
	Profile string `mapstructure:"profile"`
	Folder  string `mapstructure:"folder"`
}

type WebDAVConfig struct {
	URL      string `mapstructure:"url" validate:"omitempty,url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ReloadConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Command        string `mapstructure:"command" validate:"required,executable"`
	ContinuePolicy string `mapstructure:"continue_policy" validate:"oneof=always reload-success"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator *configValidator
	envFile   string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := newConfigValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/chewing-phrase")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
		envFile:   ".env",
	}, nil
}

// SetEnvFile changes the dotenv file read before the environment is bound.
func (loader *ConfigLoader) SetEnvFile(path string) {
	loader.envFile = path
}

// DefaultDictionaryPath is where chewing-editor keeps chewing.json on a
// zh_TW desktop.
func DefaultDictionaryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "chewing.json"
	}
	return filepath.Join(home, "文件", "chewing_editor", "chewing.json")
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// Variables already in the environment win over the .env file.
	if loader.envFile != "" {
		if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
		}
	}

	v.SetDefault("dictionary.path", DefaultDictionaryPath())
	v.SetDefault("sync.enabled", false)
	v.SetDefault("sync.method", SyncMethodRclone)
	v.SetDefault("sync.retry_attempts", 2)
	v.SetDefault("sync.retry_delay", time.Second)
	v.SetDefault("sync.rclone.command", "rclone")
	v.SetDefault("reload.enabled", true)
	v.SetDefault("reload.command", "chewing-editor")
	v.SetDefault("reload.continue_policy", "always")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "chewing")
	v.SetDefault("database.username", "user")

	bindings := []struct {
		key string
		env string
	}{
		{"dictionary.path", "CHEWING_JSON_PATH"},
		{"sync.rclone.folder", "RCLONE_REMOTE_FOLDER"},
		{"sync.rclone.profile", "RCLONE_REMOTE_PROFILE"},
		{"sync.webdav.password", "WEBDAV_PASSWORD"},
		{"database.password", "DB_PASSWORD"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", b.env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.Dictionary.Path = expandHome(cfg.Dictionary.Path)

	if err := loader.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
