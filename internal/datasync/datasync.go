package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/chenchunyii/Chewing-Editor/internal/dictionary"
)

// ImportResult tracks counts for an import.
type ImportResult struct {
	PhrasesNew     int
	PhrasesSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer copies the JSON dictionary into the database.
type Importer struct {
	repo   dictionary.Repository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repo dictionary.Repository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// ImportPhrases inserts the entries the database does not have yet.
func (imp *Importer) ImportPhrases(ctx context.Context, entries []dictionary.Entry, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	stored, err := imp.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAll() > %w", err)
	}
	seen := make(map[dictionary.Entry]bool, len(stored))
	for _, s := range stored {
		seen[s.Entry] = true
	}

	var newEntries []dictionary.Entry
	for _, entry := range entries {
		if seen[entry] {
			result.PhrasesSkipped++
			continue
		}
		seen[entry] = true
		newEntries = append(newEntries, entry)
		result.PhrasesNew++
		if _, err := fmt.Fprintf(imp.writer, "  + %s (%s)\n", entry.Phrase, entry.Bopomofo); err != nil {
			return nil, fmt.Errorf("fmt.Fprintf() > %w", err)
		}
	}

	if opts.DryRun || len(newEntries) == 0 {
		return &result, nil
	}
	if err := imp.repo.BatchUpsert(ctx, newEntries); err != nil {
		return nil, fmt.Errorf("BatchUpsert() > %w", err)
	}
	return &result, nil
}
