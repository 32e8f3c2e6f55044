package employment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"epms/internal/platform/db"
)

const uniqueViolationCode = "23505"

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) EmployeeName(ctx context.Context, employeeCode string) (string, error) {
	var first, last string
	err := s.DB.QueryRow(ctx, `
    SELECT first_name, last_name
    FROM employees
    WHERE code = $1 AND status = 'ACTIVE'
  `, employeeCode).Scan(&first, &last)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrEmployeeNotFound
	}
	if err != nil {
		return "", err
	}
	return first + " " + last, nil
}

func (s *Store) HasActive(ctx context.Context, employeeCode string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM employments WHERE employee_code = $1 AND status = $2
  `, employeeCode, StatusActive).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Create(ctx context.Context, emp Employment) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employments (code, employee_code, base_salary, position, department, status, joining_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, emp.Code, emp.EmployeeCode, emp.BaseSalary, emp.Position, emp.Department, emp.Status, emp.JoiningDate)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrActiveExists
	}
	return err
}

func (s *Store) Update(ctx context.Context, code string, params UpdateParams) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employments
    SET base_salary = $1, position = $2, department = $3, status = $4
    WHERE code = $5
  `, params.BaseSalary, params.Position, params.Department, params.Status, code)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const employmentColumns = `
    SELECT em.code, em.employee_code, e.first_name || ' ' || e.last_name,
           em.base_salary, em.position, em.department, em.status, em.joining_date
    FROM employments em
    JOIN employees e ON em.employee_code = e.code
`

func (s *Store) GetByCode(ctx context.Context, code string) (Employment, error) {
	var emp Employment
	err := s.DB.QueryRow(ctx, employmentColumns+" WHERE em.code = $1", code).
		Scan(&emp.Code, &emp.EmployeeCode, &emp.EmployeeName, &emp.BaseSalary, &emp.Position, &emp.Department, &emp.Status, &emp.JoiningDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employment{}, ErrNotFound
	}
	if err != nil {
		return Employment{}, err
	}
	return emp, nil
}

func (s *Store) ListActive(ctx context.Context) ([]Employment, error) {
	rows, err := s.DB.Query(ctx, employmentColumns+" WHERE em.status = $1 ORDER BY em.joining_date", StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employment
	for rows.Next() {
		var emp Employment
		if err := rows.Scan(&emp.Code, &emp.EmployeeCode, &emp.EmployeeName, &emp.BaseSalary, &emp.Position, &emp.Department, &emp.Status, &emp.JoiningDate); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) ActiveByEmployee(ctx context.Context, employeeCode string) (Employment, error) {
	var emp Employment
	err := s.DB.QueryRow(ctx, employmentColumns+" WHERE em.employee_code = $1 AND em.status = $2", employeeCode, StatusActive).
		Scan(&emp.Code, &emp.EmployeeCode, &emp.EmployeeName, &emp.BaseSalary, &emp.Position, &emp.Department, &emp.Status, &emp.JoiningDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employment{}, ErrNotFound
	}
	if err != nil {
		return Employment{}, err
	}
	return emp, nil
}
