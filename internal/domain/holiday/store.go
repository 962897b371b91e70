package holiday

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, dateKey string) (Entry, bool, error) {
	var entry Entry
	err := s.DB.QueryRow(ctx, `
    SELECT date_key, kind, description
    FROM holidays
    WHERE date_key = $1
  `, dateKey).Scan(&entry.DateKey, &entry.Kind, &entry.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	return entry, true, nil
}

func (s *Store) ListPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT date_key, kind, description
    FROM holidays
    WHERE date_key LIKE $1 || '%'
    ORDER BY date_key
  `, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.DateKey, &entry.Kind, &entry.Description); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) Upsert(ctx context.Context, entry Entry) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO holidays (date_key, kind, description)
    VALUES ($1,$2,$3)
    ON CONFLICT (date_key) DO UPDATE SET kind = $2, description = $3
  `, entry.DateKey, entry.Kind, entry.Description)
	return err
}

func (s *Store) Delete(ctx context.Context, dateKey string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM holidays WHERE date_key = $1", dateKey)
	return err
}
