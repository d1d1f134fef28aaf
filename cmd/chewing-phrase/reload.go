package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chenchunyii/Chewing-Editor/internal/external"
	"github.com/chenchunyii/Chewing-Editor/internal/reload"
)

func newReloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Start chewing-editor so that it reloads the user dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			reloader := reload.NewEditorReloader(external.NewExecRunner(), cfg.Reload.Command)
			result := reloader.Reload(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message())
			if !result.Succeeded() {
				return errors.New(result.Message())
			}
			return nil
		},
	}
}
