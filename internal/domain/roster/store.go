package roster

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

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id, e.name, e.created_at, c.employee_id IS NOT NULL
    FROM employees e
    LEFT JOIN pay_configs c ON c.employee_id = e.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var employee Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.CreatedAt, &employee.Configured); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	var employee Employee
	err := s.DB.QueryRow(ctx, `
    SELECT e.id, e.name, e.created_at, c.employee_id IS NOT NULL
    FROM employees e
    LEFT JOIN pay_configs c ON c.employee_id = e.id
    WHERE e.id = $1
  `, employeeID).Scan(&employee.ID, &employee.Name, &employee.CreatedAt, &employee.Configured)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, ErrNotFound
		}
		return Employee{}, err
	}
	return employee, nil
}

func (s *Store) FindByName(ctx context.Context, name string) (Employee, bool, error) {
	var employee Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, created_at, false
    FROM employees
    WHERE name = $1
  `, name).Scan(&employee.ID, &employee.Name, &employee.CreatedAt, &employee.Configured)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, false, nil
		}
		return Employee{}, false, err
	}
	return employee, true, nil
}

func (s *Store) CreateEmployee(ctx context.Context, id, name string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (id, name)
    VALUES ($1,$2)
  `, id, name)
	return err
}

// DeleteEmployee removes the employee; pay config and punch records follow
// via foreign keys.
func (s *Store) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetConfig(ctx context.Context, employeeID string) (ConfigRecord, bool, error) {
	var record ConfigRecord
	err := s.DB.QueryRow(ctx, `
    SELECT base_salary, p1, p2, p3, p4, p5, rest_day_premium,
           quota_sun, quota_mon, quota_tue, quota_wed, quota_thu, quota_fri, quota_sat,
           rest_quota
    FROM pay_configs
    WHERE employee_id = $1
  `, employeeID).Scan(
		&record.BaseSalary,
		&record.P1, &record.P2, &record.P3, &record.P4, &record.P5,
		&record.RestDayPremium,
		&record.QuotaSun, &record.QuotaMon, &record.QuotaTue, &record.QuotaWed,
		&record.QuotaThu, &record.QuotaFri, &record.QuotaSat,
		&record.RestQuota,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ConfigRecord{}, false, nil
		}
		return ConfigRecord{}, false, err
	}
	return record, true, nil
}

func (s *Store) UpsertConfig(ctx context.Context, employeeID string, record ConfigRecord) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO pay_configs (
      employee_id, base_salary, p1, p2, p3, p4, p5, rest_day_premium,
      quota_sun, quota_mon, quota_tue, quota_wed, quota_thu, quota_fri, quota_sat,
      rest_quota, updated_at
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,now())
    ON CONFLICT (employee_id) DO UPDATE SET
      base_salary = $2, p1 = $3, p2 = $4, p3 = $5, p4 = $6, p5 = $7,
      rest_day_premium = $8,
      quota_sun = $9, quota_mon = $10, quota_tue = $11, quota_wed = $12,
      quota_thu = $13, quota_fri = $14, quota_sat = $15,
      rest_quota = $16, updated_at = now()
  `, employeeID,
		record.BaseSalary,
		record.P1, record.P2, record.P3, record.P4, record.P5,
		record.RestDayPremium,
		record.QuotaSun, record.QuotaMon, record.QuotaTue, record.QuotaWed,
		record.QuotaThu, record.QuotaFri, record.QuotaSat,
		record.RestQuota,
	)
	return err
}
