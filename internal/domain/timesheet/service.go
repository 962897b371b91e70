package timesheet

import (
	"context"
	"log/slog"
	"time"

	"ponto/internal/platform/datekey"
	"ponto/internal/platform/sheets"
)

// Worker is the slice of the roster the timesheet service needs.
type Worker struct {
	ID   string
	Name string
}

// Directory supplies the roster and effective pay rules.
type Directory interface {
	Workers(ctx context.Context) ([]Worker, error)
	PayRules(ctx context.Context, employeeID string) (PayConfig, error)
}

// HolidayCalendar supplies a consistent per-month holiday snapshot.
type HolidayCalendar interface {
	DayChecker(ctx context.Context, year int, month time.Month) (func(time.Time) bool, error)
}

// EmployeePunches is one roster row of a day sheet; employees without a
// stored record appear with empty punches.
type EmployeePunches struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	ClockIn    string `json:"clockIn"`
	BreakStart string `json:"breakStart"`
	BreakEnd   string `json:"breakEnd"`
	ClockOut   string `json:"clockOut"`
}

// EmployeeBreakdown pairs a roster row with its computed breakdown.
type EmployeeBreakdown struct {
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Breakdown  Breakdown `json:"breakdown"`
}

type Service struct {
	store    *Store
	roster   Directory
	holidays HolidayCalendar
	sheets   *sheets.Client
}

func NewService(store *Store, roster Directory, holidays HolidayCalendar, sheetsClient *sheets.Client) *Service {
	return &Service{store: store, roster: roster, holidays: holidays, sheets: sheetsClient}
}

// Day returns every roster member's punches for a date, blank where nothing
// was saved.
func (s *Service) Day(ctx context.Context, date time.Time) ([]EmployeePunches, error) {
	workers, err := s.roster.Workers(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListDay(ctx, datekey.Format(date))
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string]PunchRecord, len(records))
	for _, record := range records {
		byEmployee[record.EmployeeID] = record
	}

	day := make([]EmployeePunches, 0, len(workers))
	for _, worker := range workers {
		record := byEmployee[worker.ID]
		day = append(day, EmployeePunches{
			EmployeeID: worker.ID,
			Name:       worker.Name,
			ClockIn:    record.ClockIn,
			BreakStart: record.BreakStart,
			BreakEnd:   record.BreakEnd,
			ClockOut:   record.ClockOut,
		})
	}
	return day, nil
}

// SaveDay replaces the date's records and pushes them to the spreadsheet
// best-effort, keyed by display name as the sheet expects.
func (s *Service) SaveDay(ctx context.Context, date time.Time, records []PunchRecord) error {
	key := datekey.Format(date)
	if err := s.store.ReplaceDay(ctx, key, records); err != nil {
		return err
	}
	s.pushDay(ctx, key)
	return nil
}

// ClearDay removes every record for the date, locally and remotely.
func (s *Service) ClearDay(ctx context.Context, date time.Time) error {
	key := datekey.Format(date)
	if err := s.store.ClearDay(ctx, key); err != nil {
		return err
	}
	if s.sheets.Enabled() {
		if err := s.sheets.SaveDay(ctx, key, map[string]sheets.DayEntry{}); err != nil {
			slog.Warn("day clear push failed", "date", key, "err", err)
		}
	}
	return nil
}

// MonthDaysWithData lists the dates of a month holding at least one record.
func (s *Service) MonthDaysWithData(ctx context.Context, year int, month time.Month) ([]string, error) {
	return s.store.DaysWithData(ctx, datekey.MonthPrefix(year, month))
}

// DayBreakdown recomputes the full breakdown for every roster member on a
// date. Pure recomputation against one holiday snapshot; nothing about the
// result is persisted.
func (s *Service) DayBreakdown(ctx context.Context, date time.Time) ([]EmployeeBreakdown, error) {
	day, err := s.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	checker, err := s.holidays.DayChecker(ctx, date.Year(), date.Month())
	if err != nil {
		return nil, err
	}
	cal := &CalendarContext{Date: date, Holidays: checker}

	results := make([]EmployeeBreakdown, 0, len(day))
	for _, row := range day {
		rules, err := s.roster.PayRules(ctx, row.EmployeeID)
		if err != nil {
			return nil, err
		}
		punches := PunchRecord{
			ClockIn:    row.ClockIn,
			BreakStart: row.BreakStart,
			BreakEnd:   row.BreakEnd,
			ClockOut:   row.ClockOut,
		}.Punches()
		results = append(results, EmployeeBreakdown{
			EmployeeID: row.EmployeeID,
			Name:       row.Name,
			Breakdown:  ComputeBreakdown(rules, punches, cal),
		})
	}
	return results, nil
}

// Preview computes a breakdown with no calendar context: quota 8, never a
// holiday. With an employee ID the saved pay rules apply, otherwise the
// defaults.
func (s *Service) Preview(ctx context.Context, record PunchRecord) (Breakdown, error) {
	rules := DefaultPayConfig()
	if record.EmployeeID != "" {
		loaded, err := s.roster.PayRules(ctx, record.EmployeeID)
		if err != nil {
			return Breakdown{}, err
		}
		rules = loaded
	}
	return ComputeBreakdown(rules, record.Punches(), nil), nil
}

func (s *Service) pushDay(ctx context.Context, dateKey string) {
	if !s.sheets.Enabled() {
		return
	}
	workers, err := s.roster.Workers(ctx)
	if err != nil {
		slog.Warn("day push skipped", "date", dateKey, "err", err)
		return
	}
	records, err := s.store.ListDay(ctx, dateKey)
	if err != nil {
		slog.Warn("day push skipped", "date", dateKey, "err", err)
		return
	}

	nameByID := make(map[string]string, len(workers))
	for _, worker := range workers {
		nameByID[worker.ID] = worker.Name
	}
	entries := make(map[string]sheets.DayEntry, len(records))
	for _, record := range records {
		name, ok := nameByID[record.EmployeeID]
		if !ok {
			continue
		}
		entries[name] = sheets.DayEntry{
			ClockIn:    record.ClockIn,
			BreakStart: record.BreakStart,
			BreakEnd:   record.BreakEnd,
			ClockOut:   record.ClockOut,
		}
	}
	if err := s.sheets.SaveDay(ctx, dateKey, entries); err != nil {
		slog.Warn("day push failed", "date", dateKey, "err", err)
	}
}
