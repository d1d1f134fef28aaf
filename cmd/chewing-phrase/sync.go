package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chenchunyii/Chewing-Editor/internal/external"
)

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Publish the user dictionary to the configured remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// An explicit sync ignores sync.enabled.
			syncConfig := cfg.Sync
			syncConfig.Enabled = true
			publisher := newPublisher(syncConfig, external.NewExecRunner())
			if closer, ok := publisher.(io.Closer); ok {
				defer func() { _ = closer.Close() }()
			}

			result := publisher.Publish(cmd.Context(), cfg.Dictionary.Path)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message())
			if !result.Succeeded() {
				return errors.New(result.Message())
			}
			return nil
		},
	}
}
