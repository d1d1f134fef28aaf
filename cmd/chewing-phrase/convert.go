package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chenchunyii/Chewing-Editor/internal/transliterate"
)

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <text>...",
		Short: "Print the Bopomofo annotation of each text without saving it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transliterator := transliterate.NewPinyinTransliterator()
			for _, text := range args {
				entry := transliterate.NewEntry(transliterator, text)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Phrase, entry.Bopomofo); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
