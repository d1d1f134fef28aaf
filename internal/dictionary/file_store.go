package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// ErrEmptyPhrase is returned when an entry without a phrase is upserted.
var ErrEmptyPhrase = errors.New("phrase is empty")

// FileStore keeps the user phrase dictionary in a single JSON file.
//
// Every call reads the file again, so edits made by chewing-editor between
// calls are picked up. The read-modify-write cycle is not locked: a writer
// racing between our read and write loses its changes.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

func (store *FileStore) Path() string {
	return store.path
}

// Load returns the current dictionary. A missing or unparsable file is an
// empty dictionary.
func (store *FileStore) Load() (*UserDictionary, error) {
	contents, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &UserDictionary{UserPhrase: []Entry{}}, nil
		}
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", store.path, err)
	}

	var dict UserDictionary
	if err := json.Unmarshal(contents, &dict); err != nil {
		slog.Default().Debug("discard unparsable dictionary file",
			"path", store.path,
			"error", err)
		return &UserDictionary{UserPhrase: []Entry{}}, nil
	}
	if dict.UserPhrase == nil {
		dict.UserPhrase = []Entry{}
	}
	return &dict, nil
}

// Upsert appends entry unless an identical entry exists, then rewrites the
// whole file. It reports whether the entry was appended.
func (store *FileStore) Upsert(entry Entry) (bool, error) {
	if entry.Phrase == "" {
		return false, ErrEmptyPhrase
	}

	dict, err := store.Load()
	if err != nil {
		return false, fmt.Errorf("store.Load > %w", err)
	}

	added := false
	if !dict.Contains(entry) {
		dict.UserPhrase = append(dict.UserPhrase, entry)
		added = true
	}

	if err := store.write(dict); err != nil {
		return false, fmt.Errorf("store.write > %w", err)
	}
	slog.Default().Debug("upserted user phrase",
		"phrase", entry.Phrase,
		"bopomofo", entry.Bopomofo,
		"added", added,
		"total", len(dict.UserPhrase))
	return added, nil
}

func (store *FileStore) write(dict *UserDictionary) error {
	contents, err := Marshal(dict)
	if err != nil {
		return err
	}
	if err := os.WriteFile(store.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", store.path, err)
	}
	return nil
}

// Marshal encodes dict the way chewing-editor writes it: two-space indents and
// no escaping of non-ASCII or HTML characters.
func Marshal(dict *UserDictionary) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dict); err != nil {
		return nil, fmt.Errorf("encoder.Encode > %w", err)
	}
	return buf.Bytes(), nil
}
