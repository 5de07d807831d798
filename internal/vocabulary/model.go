// Package vocabulary provides the day/entry models and the stores that persist them.
package vocabulary

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Entry is one English/Vietnamese word pair. Identity is by ID, not by text.
type Entry struct {
	ID         string `yaml:"id" db:"id"`
	English    string `yaml:"english" db:"english"`
	Vietnamese string `yaml:"vietnamese" db:"vietnamese"`
}

// Day is a named set of entries studied together
type Day struct {
	ID         string    `yaml:"id" db:"id"`
	Name       string    `yaml:"name" db:"name"`
	Vocabulary []Entry   `yaml:"vocabulary" db:"-"`
	CreatedAt  time.Time `yaml:"created_at" db:"created_at"`
}

// FindEntry returns the entry with the given id
func (d Day) FindEntry(entryID string) (Entry, bool) {
	for _, entry := range d.Vocabulary {
		if entry.ID == entryID {
			return entry, true
		}
	}
	return Entry{}, false
}

// Document is the whole persisted vocabulary state.
type Document struct {
	Days []Day `yaml:"days"`
}

func (doc *Document) findDay(dayID string) (*Day, error) {
	for i := range doc.Days {
		if doc.Days[i].ID == dayID {
			return &doc.Days[i], nil
		}
	}
	return nil, fmt.Errorf("day %q: %w", dayID, ErrNotFound)
}

// NewID returns a new opaque identifier for a day or an entry.
func NewID() string {
	return uuid.NewString()
}

// PronunciationURL returns the Cambridge Dictionary page for an English word.
func PronunciationURL(word string) string {
	slug := strings.Join(strings.FieldsFunc(strings.ToLower(strings.TrimSpace(word)), unicode.IsSpace), "-")
	return "https://dictionary.cambridge.org/dictionary/english/" + slug
}

func requireValue(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s: %w", name, ErrEmptyValue)
	}
	return value, nil
}
