package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ponto/internal/platform/datekey"
	"ponto/internal/platform/sheets"
)

var ErrUnknownKind = fmt.Errorf("unknown holiday kind")

type Service struct {
	store  *Store
	sheets *sheets.Client
}

func NewService(store *Store, sheetsClient *sheets.Client) *Service {
	return &Service{store: store, sheets: sheetsClient}
}

// Lookup resolves the holiday classification of a date: the fixed national
// table first, then any stored calendar entry.
func (s *Service) Lookup(ctx context.Context, date time.Time) (Entry, bool, error) {
	if entry, ok := FixedNational(date); ok {
		return entry, true, nil
	}
	return s.store.Get(ctx, datekey.Format(date))
}

// Month returns every holiday entry for a month, fixed national entries
// overriding stored ones on the same date.
func (s *Service) Month(ctx context.Context, year int, month time.Month) ([]Entry, error) {
	stored, err := s.store.ListPrefix(ctx, datekey.MonthPrefix(year, month))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]Entry, len(stored))
	for _, entry := range stored {
		byDate[entry.DateKey] = entry
	}
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= last; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if entry, ok := FixedNational(date); ok {
			byDate[entry.DateKey] = entry
		}
	}

	entries := make([]Entry, 0, len(byDate))
	for day := 1; day <= last; day++ {
		key := datekey.Format(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		if entry, ok := byDate[key]; ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// DayChecker loads one month's entries and returns a pure lookup over them,
// so a whole render pass computes against a single consistent snapshot.
func (s *Service) DayChecker(ctx context.Context, year int, month time.Month) (func(time.Time) bool, error) {
	stored, err := s.store.ListPrefix(ctx, datekey.MonthPrefix(year, month))
	if err != nil {
		return nil, err
	}
	keys := make(map[string]struct{}, len(stored))
	for _, entry := range stored {
		keys[entry.DateKey] = struct{}{}
	}
	return func(date time.Time) bool {
		if _, ok := FixedNational(date); ok {
			return true
		}
		_, ok := keys[datekey.Format(date)]
		return ok
	}, nil
}

// Save stores a custom or special-rest entry for a date and pushes it to the
// spreadsheet best-effort.
func (s *Service) Save(ctx context.Context, dateKey, kind, description string) (Entry, error) {
	normalized, err := datekey.Normalize(dateKey)
	if err != nil {
		return Entry{}, err
	}

	switch kind {
	case KindCustom:
		if description == "" {
			description = DefaultCustomDescription
		}
	case KindSpecialRest:
		if description == "" {
			description = DefaultSpecialRestDescription
		}
	default:
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	entry := Entry{DateKey: normalized, Kind: kind, Description: description}
	if err := s.store.Upsert(ctx, entry); err != nil {
		return Entry{}, err
	}

	if s.sheets.Enabled() {
		if err := s.sheets.SaveHoliday(ctx, normalized, sheetKind(kind), description); err != nil {
			slog.Warn("holiday push failed", "date", normalized, "err", err)
		}
	}
	return entry, nil
}

// Remove clears a stored entry, turning the date back into a normal day.
// Fixed national holidays cannot be removed.
func (s *Service) Remove(ctx context.Context, dateKey string) error {
	normalized, err := datekey.Normalize(dateKey)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, normalized); err != nil {
		return err
	}
	if s.sheets.Enabled() {
		if err := s.sheets.RemoveHoliday(ctx, normalized); err != nil {
			slog.Warn("holiday removal push failed", "date", normalized, "err", err)
		}
	}
	return nil
}

// sheetKind maps the domain kinds onto the legacy spreadsheet values.
func sheetKind(kind string) string {
	if kind == KindSpecialRest {
		return "especial"
	}
	return "feriado"
}

// KindFromSheet maps a legacy spreadsheet kind back onto the domain one.
func KindFromSheet(tipo string) string {
	if tipo == "especial" {
		return KindSpecialRest
	}
	return KindCustom
}
