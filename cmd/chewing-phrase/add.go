package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/chenchunyii/Chewing-Editor/internal/cli"
)

func newAddCommand() *cobra.Command {
	var fromClipboard bool
	var bopomofo string
	var policy cli.ContinuePolicy

	cmd := &cobra.Command{
		Use:   "add [phrase...]",
		Short: "Add phrases to the user dictionary, interactively when no phrase is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bopomofo != "" && (len(args) != 1 || fromClipboard) {
				return errors.New("--bopomofo needs exactly one phrase argument")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			phraseCLI, err := newPhraseCLI(cfg, policy)
			if err != nil {
				return err
			}
			defer func() { _ = phraseCLI.Close() }()

			ctx := cmd.Context()
			if bopomofo != "" {
				return phraseCLI.AddPhraseWithBopomofo(ctx, args[0], bopomofo)
			}
			if fromClipboard {
				text, err := clipboard.ReadAll()
				if err != nil {
					return fmt.Errorf("clipboard.ReadAll() > %w", err)
				}
				args = append(args, splitLines(text)...)
			}
			if len(args) > 0 {
				return phraseCLI.AddPhrases(ctx, args)
			}
			return phraseCLI.Run(ctx, phraseCLI)
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Add each line of the clipboard as a phrase")
	cmd.Flags().StringVar(&bopomofo, "bopomofo", "", `Reading to store instead of the generated one, e.g. "ㄧㄣˊ ㄏㄤˊ" for 銀行`)
	cmd.Flags().Var(&policy, "continue-policy", "When to keep prompting after a reload: always or reload-success (defaults to reload.continue_policy)")
	return cmd
}

// splitLines keeps each non-blank line as typed, without its line ending.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
