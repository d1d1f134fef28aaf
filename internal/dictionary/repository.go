package dictionary

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary Repository

// Repository mirrors user phrases into a database.
type Repository interface {
	FindAll(ctx context.Context) ([]StoredEntry, error)
	BatchUpsert(ctx context.Context, entries []Entry) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all mirrored phrases in insertion order.
func (r *DBRepository) FindAll(ctx context.Context) ([]StoredEntry, error) {
	var entries []StoredEntry
	if err := r.db.SelectContext(ctx, &entries, "SELECT bopomofo, phrase, created_at FROM user_phrases ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(user_phrases) > %w", err)
	}
	return entries, nil
}

// BatchUpsert inserts entries, ignoring (phrase, bopomofo) pairs that already exist.
func (r *DBRepository) BatchUpsert(ctx context.Context, entries []Entry) error {
	for _, e := range entries {
		_, err := r.db.NamedExecContext(ctx,
			"INSERT IGNORE INTO user_phrases (phrase, bopomofo) VALUES (:phrase, :bopomofo)",
			e)
		if err != nil {
			return fmt.Errorf("db.NamedExecContext(upsert user_phrase) > %w", err)
		}
	}
	return nil
}
