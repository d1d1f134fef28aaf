// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chenchunyii/Chewing-Editor/internal/dictionary"
)

// ConfigOption configures optional sections of the generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	syncEnabled    bool
	syncMethod     string
	webDAVURL      string
	reloadEnabled  bool
	reloadCommand  string
	continuePolicy string
}

// WithRcloneSync enables publishing through rclone.
func WithRcloneSync() ConfigOption {
	return func(cfg *testConfig) {
		cfg.syncEnabled = true
		cfg.syncMethod = "rclone"
	}
}

// WithWebDAVSync enables publishing to the WebDAV endpoint at url.
func WithWebDAVSync(url string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.syncEnabled = true
		cfg.syncMethod = "webdav"
		cfg.webDAVURL = url
	}
}

// WithReloadCommand enables the reload step with the given command.
func WithReloadCommand(command string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.reloadEnabled = true
		cfg.reloadCommand = command
	}
}

// WithContinuePolicy sets reload.continue_policy.
func WithContinuePolicy(policy string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.continuePolicy = policy
	}
}

// SetupTestConfig creates a config file whose dictionary lives in tmpDir.
// Sync and reload are disabled unless an option enables them.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		syncMethod:     "rclone",
		reloadCommand:  "chewing-editor",
		continuePolicy: "always",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`dictionary:
  path: %q
sync:
  enabled: %t
  method: %q
  retry_attempts: 0
  retry_delay: 1ms
  rclone:
    command: rclone
    profile: test-profile
    folder: chewing
  webdav:
    url: %q
reload:
  enabled: %t
  command: %q
  continue_policy: %q
`,
		DictionaryPath(tmpDir),
		cfg.syncEnabled,
		cfg.syncMethod,
		cfg.webDAVURL,
		cfg.reloadEnabled,
		cfg.reloadCommand,
		cfg.continuePolicy,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DictionaryPath returns the dictionary file path used by SetupTestConfig.
func DictionaryPath(tmpDir string) string {
	return filepath.Join(tmpDir, "chewing.json")
}

// CreateDictionary writes entries to the dictionary file in tmpDir.
func CreateDictionary(t *testing.T, tmpDir string, entries ...dictionary.Entry) string {
	t.Helper()

	if entries == nil {
		entries = []dictionary.Entry{}
	}
	contents, err := dictionary.Marshal(&dictionary.UserDictionary{UserPhrase: entries})
	require.NoError(t, err)

	path := DictionaryPath(tmpDir)
	require.NoError(t, os.WriteFile(path, contents, 0644))
	return path
}
