package roster

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ponto/internal/domain/timesheet"
	"ponto/internal/platform/sheets"
)

type Service struct {
	store  *Store
	sheets *sheets.Client
}

func NewService(store *Store, sheetsClient *sheets.Client) *Service {
	return &Service{store: store, sheets: sheetsClient}
}

// SortNames orders employee names the way the roster screen always has:
// Brazilian-Portuguese collation, not byte order.
func SortNames(names []string) {
	c := collate.New(language.BrazilianPortuguese)
	c.SortStrings(names)
}

func sortEmployees(employees []Employee) {
	c := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(employees, func(i, j int) bool {
		return c.CompareString(employees[i].Name, employees[j].Name) < 0
	})
}

// List returns the roster in display order.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	sortEmployees(employees)
	return employees, nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (Employee, error) {
	return s.store.GetEmployee(ctx, employeeID)
}

// Create registers a new employee under a fresh stable ID and pushes the
// updated name list to the spreadsheet best-effort.
func (s *Service) Create(ctx context.Context, name string) (Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Employee{}, ErrEmptyName
	}
	if _, exists, err := s.store.FindByName(ctx, name); err != nil {
		return Employee{}, err
	} else if exists {
		return Employee{}, ErrDuplicateName
	}

	employee := Employee{ID: uuid.NewString(), Name: name}
	if err := s.store.CreateEmployee(ctx, employee.ID, employee.Name); err != nil {
		return Employee{}, err
	}

	s.pushNames(ctx)
	return employee, nil
}

// Remove deletes an employee together with their config and punch history.
// No record remapping is needed: nothing is keyed by roster position.
func (s *Service) Remove(ctx context.Context, employeeID string) error {
	if err := s.store.DeleteEmployee(ctx, employeeID); err != nil {
		return err
	}
	s.pushNames(ctx)
	return nil
}

// Config returns the stored (possibly partial) record, or an empty record
// when the employee was never configured.
func (s *Service) Config(ctx context.Context, employeeID string) (ConfigRecord, error) {
	if _, err := s.store.GetEmployee(ctx, employeeID); err != nil {
		return ConfigRecord{}, err
	}
	record, _, err := s.store.GetConfig(ctx, employeeID)
	return record, err
}

// SaveConfig upserts the record and pushes it to the spreadsheet, keyed by
// display name as the sheet expects.
func (s *Service) SaveConfig(ctx context.Context, employeeID string, record ConfigRecord) error {
	employee, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if err := s.store.UpsertConfig(ctx, employeeID, record); err != nil {
		return err
	}

	if s.sheets.Enabled() {
		if err := s.sheets.SaveConfig(ctx, employee.Name, sheetConfig(record)); err != nil {
			slog.Warn("config push failed", "employee", employee.Name, "err", err)
		}
	}
	return nil
}

// PayRules resolves the effective pay rules for an employee, defaults
// filling any gap. Unknown employees get the full defaults; the engine never
// blocks on missing data.
func (s *Service) PayRules(ctx context.Context, employeeID string) (timesheet.PayConfig, error) {
	record, found, err := s.store.GetConfig(ctx, employeeID)
	if err != nil {
		return timesheet.PayConfig{}, err
	}
	if !found {
		return timesheet.DefaultPayConfig(), nil
	}
	return record.PayConfig(), nil
}

// Workers adapts the roster for the timesheet service.
func (s *Service) Workers(ctx context.Context) ([]timesheet.Worker, error) {
	employees, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	workers := make([]timesheet.Worker, 0, len(employees))
	for _, employee := range employees {
		workers = append(workers, timesheet.Worker{ID: employee.ID, Name: employee.Name})
	}
	return workers, nil
}

func (s *Service) pushNames(ctx context.Context) {
	if !s.sheets.Enabled() {
		return
	}
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		slog.Warn("roster push skipped", "err", err)
		return
	}
	names := make([]string, 0, len(employees))
	for _, employee := range employees {
		names = append(names, employee.Name)
	}
	SortNames(names)
	if err := s.sheets.SaveEmployees(ctx, names); err != nil {
		slog.Warn("roster push failed", "err", err)
	}
}

func sheetConfig(record ConfigRecord) sheets.ConfigEntry {
	return sheets.ConfigEntry{
		BaseSalary:     record.BaseSalary,
		P1:             record.P1,
		P2:             record.P2,
		P3:             record.P3,
		P4:             record.P4,
		P5:             record.P5,
		RestDayPremium: record.RestDayPremium,
		QuotaSun:       record.QuotaSun,
		QuotaMon:       record.QuotaMon,
		QuotaTue:       record.QuotaTue,
		QuotaWed:       record.QuotaWed,
		QuotaThu:       record.QuotaThu,
		QuotaFri:       record.QuotaFri,
		QuotaSat:       record.QuotaSat,
		RestQuota:      record.RestQuota,
	}
}
