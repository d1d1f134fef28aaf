package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chenchunyii/Chewing-Editor/internal/database"
	"github.com/chenchunyii/Chewing-Editor/internal/datasync"
	"github.com/chenchunyii/Chewing-Editor/internal/dictionary"
	"github.com/chenchunyii/Chewing-Editor/schemas"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateImportDBCommand())

	return migrateCmd
}

func newMigrateImportDBCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import the user dictionary into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dict, err := dictionary.NewFileStore(cfg.Dictionary.Path).Load()
			if err != nil {
				return fmt.Errorf("dictionary.FileStore.Load() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() { _ = db.Close() }()

			if !dryRun {
				if err := database.Migrate(ctx, db, schemas.Migrations); err != nil {
					return fmt.Errorf("database.Migrate() > %w", err)
				}
			}

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(dictionary.NewDBRepository(db), out)
			result, err := importer.ImportPhrases(ctx, dict.UserPhrase, datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("importer.ImportPhrases() > %w", err)
			}

			_, _ = fmt.Fprintln(out, "\nImport Summary:")
			if dryRun {
				_, _ = fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			_, _ = fmt.Fprintf(out, "  Phrases: %d new, %d skipped\n", result.PhrasesNew, result.PhrasesSkipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}
