package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/chenchunyii/Chewing-Editor/internal/dictionary"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "format"
}

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatTable, OutputFormatJSON, OutputFormatYAML}
)

func newListCommand() *cobra.Command {
	format := OutputFormatTable

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the phrases in the user dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dict, err := dictionary.NewFileStore(cfg.Dictionary.Path).Load()
			if err != nil {
				return fmt.Errorf("dictionary.FileStore.Load() > %w", err)
			}
			return writeDictionary(cmd.OutOrStdout(), dict, format)
		},
	}
	cmd.Flags().VarP(&format, "output", "o", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	return cmd
}

func writeDictionary(w io.Writer, dict *dictionary.UserDictionary, format OutputFormat) error {
	switch format {
	case OutputFormatJSON:
		contents, err := dictionary.Marshal(dict)
		if err != nil {
			return err
		}
		_, err = w.Write(contents)
		return err
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(dict); err != nil {
			return fmt.Errorf("yaml.Encoder.Encode() > %w", err)
		}
		return encoder.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "PHRASE\tBOPOMOFO")
		for _, entry := range dict.UserPhrase {
			_, _ = fmt.Fprintf(tw, "%s\t%s\n", entry.Phrase, entry.Bopomofo)
		}
		_, _ = fmt.Fprintf(tw, "\n%d phrases\n", len(dict.UserPhrase))
		return tw.Flush()
	}
}
