package main

import (
	"fmt"

	"github.com/chenchunyii/Chewing-Editor/internal/cli"
	"github.com/chenchunyii/Chewing-Editor/internal/config"
	"github.com/chenchunyii/Chewing-Editor/internal/datasync"
	"github.com/chenchunyii/Chewing-Editor/internal/dictionary"
	"github.com/chenchunyii/Chewing-Editor/internal/external"
	"github.com/chenchunyii/Chewing-Editor/internal/reload"
	"github.com/chenchunyii/Chewing-Editor/internal/transliterate"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newPublisher returns nil when syncing is disabled.
func newPublisher(cfg config.SyncConfig, runner external.Runner) datasync.Publisher {
	if !cfg.Enabled {
		return nil
	}
	switch cfg.Method {
	case config.SyncMethodWebDAV:
		return datasync.NewWebDAVPublisher(cfg.WebDAV.URL, cfg.WebDAV.Username, cfg.WebDAV.Password)
	default:
		return datasync.NewRclonePublisher(runner, datasync.RcloneOptions{
			Command:       cfg.Rclone.Command,
			Profile:       cfg.Rclone.Profile,
			Folder:        cfg.Rclone.Folder,
			RetryAttempts: cfg.RetryAttempts,
			RetryDelay:    cfg.RetryDelay,
		})
	}
}

// newReloader returns nil when reloading is disabled.
func newReloader(cfg config.ReloadConfig, runner external.Runner) reload.Reloader {
	if !cfg.Enabled {
		return nil
	}
	return reload.NewEditorReloader(runner, cfg.Command)
}

func newPhraseCLI(cfg *config.Config, policyOverride cli.ContinuePolicy) (*cli.PhraseCLI, error) {
	policy := policyOverride
	if policy == "" {
		var err error
		policy, err = cli.ParseContinuePolicy(cfg.Reload.ContinuePolicy)
		if err != nil {
			return nil, fmt.Errorf("cli.ParseContinuePolicy() > %w", err)
		}
	}

	runner := external.NewExecRunner()
	return cli.NewPhraseCLI(
		transliterate.NewPinyinTransliterator(),
		dictionary.NewFileStore(cfg.Dictionary.Path),
		newPublisher(cfg.Sync, runner),
		newReloader(cfg.Reload, runner),
		policy,
	), nil
}
