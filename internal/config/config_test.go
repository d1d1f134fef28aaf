package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"CHEWING_JSON_PATH",
	"RCLONE_REMOTE_FOLDER",
	"RCLONE_REMOTE_PROFILE",
	"WEBDAV_PASSWORD",
	"DB_PASSWORD",
}

// clearConfigEnv unsets every bound variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

func defaultConfig(dictionaryPath string) *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Path: dictionaryPath,
		},
		Sync: SyncConfig{
			Enabled:       false,
			Method:        SyncMethodRclone,
			RetryAttempts: 2,
			RetryDelay:    time.Second,
			Rclone: RcloneConfig{
				Command: "rclone",
			},
		},
		Reload: ReloadConfig{
			Enabled:        true,
			Command:        "chewing-editor",
			ContinuePolicy: "always",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "chewing",
			Username: "user",
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     func(dir string) string
		env               map[string]string
		useExplicitPath   bool
		want              func(dir string) *Config
		wantErrorContains []string
	}{
		{
			name: "dictionary path from config file",
			configContent: func(dir string) string {
				return fmt.Sprintf("dictionary:\n  path: %s\n", filepath.Join(dir, "chewing.json"))
			},
			want: func(dir string) *Config {
				return defaultConfig(filepath.Join(dir, "chewing.json"))
			},
		},
		{
			name: "explicit config file path",
			configContent: func(dir string) string {
				return fmt.Sprintf(`dictionary:
  path: %s
sync:
  enabled: true
  method: webdav
  retry_attempts: 5
  retry_delay: 250ms
  webdav:
    url: https://dav.example.com/remote.php/dav/files/me
    username: me
reload:
  enabled: false
  command: /usr/local/bin/chewing-editor
  continue_policy: reload-success
`, filepath.Join(dir, "chewing.json"))
			},
			useExplicitPath: true,
			want: func(dir string) *Config {
				cfg := defaultConfig(filepath.Join(dir, "chewing.json"))
				cfg.Sync.Enabled = true
				cfg.Sync.Method = SyncMethodWebDAV
				cfg.Sync.RetryAttempts = 5
				cfg.Sync.RetryDelay = 250 * time.Millisecond
				cfg.Sync.WebDAV = WebDAVConfig{
					URL:      "https://dav.example.com/remote.php/dav/files/me",
					Username: "me",
				}
				cfg.Reload = ReloadConfig{
					Enabled:        false,
					Command:        "/usr/local/bin/chewing-editor",
					ContinuePolicy: "reload-success",
				}
				return cfg
			},
		},
		{
			name: "environment variables override the config file",
			configContent: func(dir string) string {
				return "dictionary:\n  path: /does/not/matter.json\n"
			},
			env: map[string]string{
				"CHEWING_JSON_PATH":     "chewing.json",
				"RCLONE_REMOTE_FOLDER":  "ime/chewing",
				"RCLONE_REMOTE_PROFILE": "gdrive",
				"DB_PASSWORD":           "secret",
			},
			want: func(dir string) *Config {
				cfg := defaultConfig("chewing.json")
				cfg.Sync.Rclone.Folder = "ime/chewing"
				cfg.Sync.Rclone.Profile = "gdrive"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name: "no config file uses environment only",
			env: map[string]string{
				"CHEWING_JSON_PATH": "chewing.json",
			},
			want: func(dir string) *Config {
				return defaultConfig("chewing.json")
			},
		},
		{
			name: "invalid YAML format",
			configContent: func(dir string) string {
				return "dictionary:\n  path: x\n  invalid yaml format here [[[\n"
			},
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "dictionary directory does not exist",
			configContent: func(dir string) string {
				return fmt.Sprintf("dictionary:\n  path: %s\n", filepath.Join(dir, "missing", "chewing.json"))
			},
			wantErrorContains: []string{
				"invalid configuration",
				"dictionary.path must be a file path inside an existing directory",
			},
		},
		{
			name: "dictionary path is a directory",
			configContent: func(dir string) string {
				return fmt.Sprintf("dictionary:\n  path: %s\n", dir)
			},
			wantErrorContains: []string{
				"must be a file path inside an existing directory",
			},
		},
		{
			name: "unknown sync method and continue policy",
			configContent: func(dir string) string {
				return fmt.Sprintf(`dictionary:
  path: %s
sync:
  method: ftp
reload:
  continue_policy: sometimes
`, filepath.Join(dir, "chewing.json"))
			},
			wantErrorContains: []string{
				"method must be one of [rclone webdav]",
				"continue_policy must be one of [always reload-success]",
			},
		},
		{
			name: "commands with arguments",
			configContent: func(dir string) string {
				return fmt.Sprintf(`dictionary:
  path: %s
sync:
  rclone:
    command: rclone -v
reload:
  command: "chewing-editor --reload"
`, filepath.Join(dir, "chewing.json"))
			},
			wantErrorContains: []string{
				"sync.rclone.command must be a single command name or path without arguments",
				"reload.command must be a single command name or path without arguments",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			tempDir := t.TempDir()
			chdir(t, tempDir)

			var configPath string
			if tt.configContent != nil {
				name := "config.yaml"
				if tt.useExplicitPath {
					name = "chewing-phrase.yml"
				}
				path := filepath.Join(tempDir, name)
				require.NoError(t, os.WriteFile(path, []byte(tt.configContent(tempDir)), 0644))
				if tt.useExplicitPath {
					configPath = path
				}
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErrorContains != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(tempDir), got)
		})
	}
}

func TestConfigLoader_Load_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	tempDir := t.TempDir()
	chdir(t, tempDir)

	envContent := fmt.Sprintf("CHEWING_JSON_PATH=%s\nRCLONE_REMOTE_PROFILE=gdrive\nRCLONE_REMOTE_FOLDER=chewing\n",
		filepath.Join(tempDir, "chewing.json"))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte(envContent), 0644))

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempDir, "chewing.json"), got.Dictionary.Path)
	assert.Equal(t, "gdrive", got.Sync.Rclone.Profile)
	assert.Equal(t, "chewing", got.Sync.Rclone.Folder)
}

func TestConfigLoader_Load_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	clearConfigEnv(t)
	tempDir := t.TempDir()
	chdir(t, tempDir)
	t.Setenv("CHEWING_JSON_PATH", "from-env.json")

	envFile := filepath.Join(tempDir, "custom.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CHEWING_JSON_PATH=from-dotenv.json\n"), 0644))

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	loader.SetEnvFile(envFile)
	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", got.Dictionary.Path)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "chewing.json"), expandHome("~/chewing.json"))
	assert.Equal(t, "/tmp/chewing.json", expandHome("/tmp/chewing.json"))
	assert.Equal(t, "relative/chewing.json", expandHome("relative/chewing.json"))
}
