package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLStore keeps every day in a single YAML document on the local disk.
// Saves are best effort: the document is rewritten in place on every mutation.
type YAMLStore struct {
	path  string
	clock func() time.Time
}

// NewYAMLStore creates a store backed by the document at path.
// A missing document is treated as an empty one.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{
		path:  path,
		clock: time.Now,
	}
}

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		return result, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return result, nil
}

// WriteYamlFile encodes data into path, creating parent directories as needed.
func WriteYamlFile[T any](path string, data T) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
	}
	return encoder.Close()
}

func (s *YAMLStore) load() (Document, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return Document{}, nil
	}
	return readYamlFile[Document](s.path)
}

func (s *YAMLStore) update(fn func(doc *Document) error) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return WriteYamlFile(s.path, doc)
}

func (s *YAMLStore) GetVocabulary(ctx context.Context, dayID string) ([]Entry, error) {
	day, err := s.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	return day.Vocabulary, nil
}

func (s *YAMLStore) ListDays(_ context.Context) ([]Day, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Days, nil
}

func (s *YAMLStore) GetDay(_ context.Context, dayID string) (Day, error) {
	doc, err := s.load()
	if err != nil {
		return Day{}, err
	}
	day, err := doc.findDay(dayID)
	if err != nil {
		return Day{}, err
	}
	return *day, nil
}

func (s *YAMLStore) CreateDay(_ context.Context, name string) (Day, error) {
	name, err := requireValue("day name", name)
	if err != nil {
		return Day{}, err
	}

	day := Day{
		ID:         NewID(),
		Name:       name,
		Vocabulary: []Entry{},
		CreatedAt:  s.clock().UTC().Truncate(time.Second),
	}
	if err := s.update(func(doc *Document) error {
		doc.Days = append(doc.Days, day)
		return nil
	}); err != nil {
		return Day{}, err
	}
	return day, nil
}

func (s *YAMLStore) RenameDay(_ context.Context, dayID, name string) error {
	name, err := requireValue("day name", name)
	if err != nil {
		return err
	}
	return s.update(func(doc *Document) error {
		day, err := doc.findDay(dayID)
		if err != nil {
			return err
		}
		day.Name = name
		return nil
	})
}

func (s *YAMLStore) DeleteDay(_ context.Context, dayID string) error {
	return s.update(func(doc *Document) error {
		for i, day := range doc.Days {
			if day.ID == dayID {
				doc.Days = append(doc.Days[:i], doc.Days[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("day %q: %w", dayID, ErrNotFound)
	})
}

func (s *YAMLStore) AddEntry(_ context.Context, dayID, english, vietnamese string) (Entry, error) {
	english, err := requireValue("english", english)
	if err != nil {
		return Entry{}, err
	}
	vietnamese, err = requireValue("vietnamese", vietnamese)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:         NewID(),
		English:    english,
		Vietnamese: vietnamese,
	}
	if err := s.update(func(doc *Document) error {
		day, err := doc.findDay(dayID)
		if err != nil {
			return err
		}
		day.Vocabulary = append(day.Vocabulary, entry)
		return nil
	}); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (s *YAMLStore) UpdateEntry(_ context.Context, dayID string, entry Entry) error {
	english, err := requireValue("english", entry.English)
	if err != nil {
		return err
	}
	vietnamese, err := requireValue("vietnamese", entry.Vietnamese)
	if err != nil {
		return err
	}
	return s.update(func(doc *Document) error {
		day, err := doc.findDay(dayID)
		if err != nil {
			return err
		}
		for i := range day.Vocabulary {
			if day.Vocabulary[i].ID == entry.ID {
				day.Vocabulary[i].English = english
				day.Vocabulary[i].Vietnamese = vietnamese
				return nil
			}
		}
		return fmt.Errorf("entry %q: %w", entry.ID, ErrNotFound)
	})
}

func (s *YAMLStore) DeleteEntry(_ context.Context, dayID, entryID string) error {
	return s.update(func(doc *Document) error {
		day, err := doc.findDay(dayID)
		if err != nil {
			return err
		}
		for i, entry := range day.Vocabulary {
			if entry.ID == entryID {
				day.Vocabulary = append(day.Vocabulary[:i], day.Vocabulary[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("entry %q: %w", entryID, ErrNotFound)
	})
}

var _ Store = (*YAMLStore)(nil)
