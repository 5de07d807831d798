package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DBStore implements Store on top of the days and entries tables.
// The queries are portable between MySQL and SQLite.
type DBStore struct {
	db    *sqlx.DB
	clock func() time.Time
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{
		db:    db,
		clock: time.Now,
	}
}

type entryRow struct {
	DayID string `db:"day_id"`
	Entry
}

func (s *DBStore) GetVocabulary(ctx context.Context, dayID string) ([]Entry, error) {
	day, err := s.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	return day.Vocabulary, nil
}

func (s *DBStore) ListDays(ctx context.Context) ([]Day, error) {
	var days []Day
	if err := s.db.SelectContext(ctx, &days, "SELECT id, name, created_at FROM days ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(days) > %w", err)
	}

	var rows []entryRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT id, day_id, english, vietnamese FROM entries ORDER BY day_id, position, id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(entries) > %w", err)
	}
	byDay := make(map[string][]Entry)
	for _, row := range rows {
		byDay[row.DayID] = append(byDay[row.DayID], row.Entry)
	}

	for i := range days {
		days[i].Vocabulary = byDay[days[i].ID]
		if days[i].Vocabulary == nil {
			days[i].Vocabulary = []Entry{}
		}
	}
	return days, nil
}

func (s *DBStore) GetDay(ctx context.Context, dayID string) (Day, error) {
	var day Day
	err := s.db.GetContext(ctx, &day, "SELECT id, name, created_at FROM days WHERE id = ?", dayID)
	if errors.Is(err, sql.ErrNoRows) {
		return Day{}, fmt.Errorf("day %q: %w", dayID, ErrNotFound)
	}
	if err != nil {
		return Day{}, fmt.Errorf("db.GetContext(day) > %w", err)
	}

	day.Vocabulary = []Entry{}
	if err := s.db.SelectContext(ctx, &day.Vocabulary,
		"SELECT id, english, vietnamese FROM entries WHERE day_id = ? ORDER BY position, id", dayID); err != nil {
		return Day{}, fmt.Errorf("db.SelectContext(entries by day) > %w", err)
	}
	return day, nil
}

func (s *DBStore) CreateDay(ctx context.Context, name string) (Day, error) {
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
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO days (id, name, created_at) VALUES (?, ?, ?)",
		day.ID, day.Name, day.CreatedAt); err != nil {
		return Day{}, fmt.Errorf("db.ExecContext(insert day) > %w", err)
	}
	return day, nil
}

func (s *DBStore) RenameDay(ctx context.Context, dayID, name string) error {
	name, err := requireValue("day name", name)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, "UPDATE days SET name = ? WHERE id = ?", name, dayID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update day) > %w", err)
	}
	return requireAffected(result, "day", dayID)
}

func (s *DBStore) DeleteDay(ctx context.Context, dayID string) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM entries WHERE day_id = ?", dayID); err != nil {
			return fmt.Errorf("tx.ExecContext(delete entries) > %w", err)
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM days WHERE id = ?", dayID)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(delete day) > %w", err)
		}
		return requireAffected(result, "day", dayID)
	})
}

func (s *DBStore) AddEntry(ctx context.Context, dayID, english, vietnamese string) (Entry, error) {
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
	err = s.withTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM days WHERE id = ?", dayID); err != nil {
			return fmt.Errorf("tx.GetContext(count days) > %w", err)
		}
		if count == 0 {
			return fmt.Errorf("day %q: %w", dayID, ErrNotFound)
		}

		var position int
		if err := tx.GetContext(ctx, &position,
			"SELECT COALESCE(MAX(position), 0) FROM entries WHERE day_id = ?", dayID); err != nil {
			return fmt.Errorf("tx.GetContext(max position) > %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO entries (id, day_id, english, vietnamese, position) VALUES (?, ?, ?, ?, ?)",
			entry.ID, dayID, entry.English, entry.Vietnamese, position+1); err != nil {
			return fmt.Errorf("tx.ExecContext(insert entry) > %w", err)
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (s *DBStore) UpdateEntry(ctx context.Context, dayID string, entry Entry) error {
	english, err := requireValue("english", entry.English)
	if err != nil {
		return err
	}
	vietnamese, err := requireValue("vietnamese", entry.Vietnamese)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx,
		"UPDATE entries SET english = ?, vietnamese = ? WHERE id = ? AND day_id = ?",
		english, vietnamese, entry.ID, dayID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update entry) > %w", err)
	}
	return requireAffected(result, "entry", entry.ID)
}

func (s *DBStore) DeleteEntry(ctx context.Context, dayID, entryID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ? AND day_id = ?", entryID, dayID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete entry) > %w", err)
	}
	return requireAffected(result, "entry", entryID)
}

func (s *DBStore) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

func requireAffected(result sql.Result, kind, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return nil
}

var _ Store = (*DBStore)(nil)
