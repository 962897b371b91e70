// Package sheetsync pulls spreadsheet state into the local store: the
// roster, pay configs, holiday entries and historical day records. Pushes
// happen at the point of each save; this package covers the other direction.
package sheetsync

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ponto/internal/domain/holiday"
	"ponto/internal/domain/roster"
	"ponto/internal/domain/timesheet"
	"ponto/internal/platform/datekey"
	"ponto/internal/platform/sheets"
)

type Service struct {
	sheets   *sheets.Client
	roster   *roster.Store
	holidays *holiday.Store
	punches  *timesheet.Store
}

func New(sheetsClient *sheets.Client, rosterStore *roster.Store, holidayStore *holiday.Store, punchStore *timesheet.Store) *Service {
	return &Service{sheets: sheetsClient, roster: rosterStore, holidays: holidayStore, punches: punchStore}
}

func (s *Service) Enabled() bool {
	return s != nil && s.sheets.Enabled()
}

type PullSummary struct {
	EmployeesAdded int `json:"employeesAdded"`
	ConfigsUpdated int `json:"configsUpdated"`
	HolidaysStored int `json:"holidaysStored"`
}

// Pull refreshes roster, configs and holidays from the spreadsheet.
// Employees present remotely but unknown locally are created under fresh
// IDs; local employees missing from the sheet are left alone (removal is an
// explicit roster operation, never a sync side effect).
func (s *Service) Pull(ctx context.Context) (PullSummary, error) {
	var summary PullSummary
	if !s.Enabled() {
		return summary, fmt.Errorf("spreadsheet sync is not configured")
	}

	names, err := s.sheets.LoadEmployees(ctx)
	if err != nil {
		return summary, err
	}
	idByName := make(map[string]string)
	existing, err := s.roster.ListEmployees(ctx)
	if err != nil {
		return summary, err
	}
	for _, employee := range existing {
		idByName[employee.Name] = employee.ID
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, known := idByName[name]; known {
			continue
		}
		id := uuid.NewString()
		if err := s.roster.CreateEmployee(ctx, id, name); err != nil {
			return summary, err
		}
		idByName[name] = id
		summary.EmployeesAdded++
	}

	configs, err := s.sheets.LoadConfigs(ctx)
	if err != nil {
		return summary, err
	}
	for name, entry := range configs {
		id, known := idByName[name]
		if !known {
			slog.Warn("config for unknown employee ignored", "employee", name)
			continue
		}
		if err := s.roster.UpsertConfig(ctx, id, configRecord(entry)); err != nil {
			return summary, err
		}
		summary.ConfigsUpdated++
	}

	entries, err := s.sheets.LoadHolidays(ctx)
	if err != nil {
		return summary, err
	}
	for key, entry := range entries {
		normalized, err := datekey.Normalize(key)
		if err != nil {
			slog.Warn("holiday with bad date key ignored", "key", key)
			continue
		}
		if err := s.holidays.Upsert(ctx, holiday.Entry{
			DateKey:     normalized,
			Kind:        holiday.KindFromSheet(entry.Kind),
			Description: entry.Description,
		}); err != nil {
			return summary, err
		}
		summary.HolidaysStored++
	}

	return summary, nil
}

type BackfillSummary struct {
	DaysChecked int `json:"daysChecked"`
	DaysLoaded  int `json:"daysLoaded"`
	DaysFailed  int `json:"daysFailed"`
}

// Backfill walks the last N calendar days and copies every remote day record
// into the local store. Individual day failures are tolerated; the sweep
// carries on.
func (s *Service) Backfill(ctx context.Context, days int) (BackfillSummary, error) {
	var summary BackfillSummary
	if !s.Enabled() {
		return summary, fmt.Errorf("spreadsheet sync is not configured")
	}
	if days <= 0 {
		days = 30
	}

	employees, err := s.roster.ListEmployees(ctx)
	if err != nil {
		return summary, err
	}
	idByName := make(map[string]string, len(employees))
	names := make([]string, 0, len(employees))
	for _, employee := range employees {
		idByName[employee.Name] = employee.ID
		names = append(names, employee.Name)
	}
	// Positional keys in old records refer to the alphabetical roster
	// order the browser client maintained.
	roster.SortNames(names)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < days; i++ {
		summary.DaysChecked++
		key := datekey.Format(today.AddDate(0, 0, -i))

		entries, err := s.sheets.LoadDay(ctx, key)
		if err != nil {
			slog.Warn("day backfill failed", "date", key, "err", err)
			summary.DaysFailed++
			continue
		}
		if len(entries) == 0 {
			continue
		}

		records := make([]timesheet.PunchRecord, 0, len(entries))
		for entryKey, entry := range entries {
			id := s.resolveEmployee(entryKey, idByName, names)
			if id == "" {
				slog.Warn("day record for unknown employee ignored", "date", key, "key", entryKey)
				continue
			}
			records = append(records, timesheet.PunchRecord{
				EmployeeID: id,
				ClockIn:    entry.ClockIn,
				BreakStart: entry.BreakStart,
				BreakEnd:   entry.BreakEnd,
				ClockOut:   entry.ClockOut,
			})
		}
		if err := s.punches.ReplaceDay(ctx, key, records); err != nil {
			slog.Warn("day backfill store failed", "date", key, "err", err)
			summary.DaysFailed++
			continue
		}
		summary.DaysLoaded++
	}

	return summary, nil
}

// resolveEmployee maps a remote record key onto a stable employee ID. Name
// keys match directly; legacy numeric keys index the alphabetical roster.
func (s *Service) resolveEmployee(key string, idByName map[string]string, sortedNames []string) string {
	if id, ok := idByName[key]; ok {
		return id
	}
	if index, err := strconv.Atoi(key); err == nil && index >= 0 && index < len(sortedNames) {
		return idByName[sortedNames[index]]
	}
	return ""
}

func configRecord(entry sheets.ConfigEntry) roster.ConfigRecord {
	return roster.ConfigRecord{
		BaseSalary:     entry.BaseSalary,
		P1:             entry.P1,
		P2:             entry.P2,
		P3:             entry.P3,
		P4:             entry.P4,
		P5:             entry.P5,
		RestDayPremium: entry.RestDayPremium,
		QuotaSun:       entry.QuotaSun,
		QuotaMon:       entry.QuotaMon,
		QuotaTue:       entry.QuotaTue,
		QuotaWed:       entry.QuotaWed,
		QuotaThu:       entry.QuotaThu,
		QuotaFri:       entry.QuotaFri,
		QuotaSat:       entry.QuotaSat,
		RestQuota:      entry.RestQuota,
	}
}
