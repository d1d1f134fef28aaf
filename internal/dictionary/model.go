package dictionary

import "time"

// Entry is a single user phrase as stored in chewing.json.
type Entry struct {
	Bopomofo string `json:"bopomofo" yaml:"bopomofo" db:"bopomofo"`
	Phrase   string `json:"phrase" yaml:"phrase" db:"phrase"`
}

// UserDictionary is the whole chewing.json document.
type UserDictionary struct {
	UserPhrase []Entry `json:"userphrase" yaml:"userphrase"`
}

// Contains reports whether an entry equal to e is already present.
func (d UserDictionary) Contains(e Entry) bool {
	for _, existing := range d.UserPhrase {
		if existing == e {
			return true
		}
	}
	return false
}

// StoredEntry is an Entry mirrored into the database.
type StoredEntry struct {
	Entry
	CreatedAt time.Time `db:"created_at" yaml:"created_at"`
}
