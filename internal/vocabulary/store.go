package vocabulary

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyValue = errors.New("value must not be empty")
)

//go:generate mockgen -source=store.go -destination=../mocks/vocabulary/mock_store.go -package=mock_vocabulary Store

// Store owns persistence of days and their vocabulary.
// The quiz engines only ever call GetVocabulary; the rest is used by the management commands.
type Store interface {
	GetVocabulary(ctx context.Context, dayID string) ([]Entry, error)

	ListDays(ctx context.Context) ([]Day, error)
	GetDay(ctx context.Context, dayID string) (Day, error)
	CreateDay(ctx context.Context, name string) (Day, error)
	RenameDay(ctx context.Context, dayID, name string) error
	DeleteDay(ctx context.Context, dayID string) error

	AddEntry(ctx context.Context, dayID, english, vietnamese string) (Entry, error)
	UpdateEntry(ctx context.Context, dayID string, entry Entry) error
	DeleteEntry(ctx context.Context, dayID, entryID string) error
}
