package timesheet

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListDay returns the stored punch records for one date key.
func (s *Store) ListDay(ctx context.Context, dateKey string) ([]PunchRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, clock_in, break_start, break_end, clock_out
    FROM day_punches
    WHERE date_key = $1
  `, dateKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PunchRecord
	for rows.Next() {
		var record PunchRecord
		if err := rows.Scan(&record.EmployeeID, &record.ClockIn, &record.BreakStart, &record.BreakEnd, &record.ClockOut); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ReplaceDay swaps the whole day's records in one transaction. Records with
// nothing filled in are not stored; saving an all-empty set clears the day.
func (s *Store) ReplaceDay(ctx context.Context, dateKey string, records []PunchRecord) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM day_punches WHERE date_key = $1", dateKey); err != nil {
		return err
	}
	for _, record := range records {
		if record.Empty() {
			continue
		}
		if _, err := tx.Exec(ctx, `
      INSERT INTO day_punches (date_key, employee_id, clock_in, break_start, break_end, clock_out)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, dateKey, record.EmployeeID, record.ClockIn, record.BreakStart, record.BreakEnd, record.ClockOut); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) ClearDay(ctx context.Context, dateKey string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM day_punches WHERE date_key = $1", dateKey)
	return err
}

// DaysWithData lists the date keys under a prefix that have at least one
// record, for the calendar's day markers.
func (s *Store) DaysWithData(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT date_key
    FROM day_punches
    WHERE date_key LIKE $1 || '%'
    ORDER BY date_key
  `, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
