package payslip

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

func (s *Store) ExistsForPeriod(ctx context.Context, employeeCode string, month, year int) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM payslips WHERE employee_code = $1 AND month = $2 AND year = $3)",
		employeeCode, month, year).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Store) ActiveEmployee(ctx context.Context, employeeCode string) (EmployeeContact, error) {
	var c EmployeeContact
	err := s.DB.QueryRow(ctx,
		"SELECT code, first_name, last_name, email FROM employees WHERE code = $1 AND status = 'ACTIVE'",
		employeeCode).Scan(&c.Code, &c.FirstName, &c.LastName, &c.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeContact{}, ErrEmployeeNotFound
	}
	if err != nil {
		return EmployeeContact{}, err
	}
	return c, nil
}

func (s *Store) Contact(ctx context.Context, employeeCode string) (EmployeeContact, error) {
	var c EmployeeContact
	err := s.DB.QueryRow(ctx,
		"SELECT code, first_name, last_name, email FROM employees WHERE code = $1",
		employeeCode).Scan(&c.Code, &c.FirstName, &c.LastName, &c.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeContact{}, ErrEmployeeNotFound
	}
	if err != nil {
		return EmployeeContact{}, err
	}
	return c, nil
}

func (s *Store) ActiveBaseSalary(ctx context.Context, employeeCode string) (float64, error) {
	var salary float64
	err := s.DB.QueryRow(ctx,
		"SELECT base_salary FROM employments WHERE employee_code = $1 AND status = 'ACTIVE'",
		employeeCode).Scan(&salary)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrEmploymentNotFound
	}
	if err != nil {
		return 0, err
	}
	return salary, nil
}

func (s *Store) Insert(ctx context.Context, p Payslip) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payslips (
      id, employee_code, house_amount, transport_amount, gross_salary,
      employee_tax, pension_amount, medical_insurance, other_amount,
      net_salary, month, year, status, created_at
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
  `, p.ID, p.EmployeeCode, p.HouseAmount, p.TransportAmount, p.GrossSalary,
		p.EmployeeTax, p.Pension, p.MedicalInsurance, p.Others,
		p.NetSalary, p.Month, p.Year, p.Status, p.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrAlreadyExists
	}
	return err
}

const payslipColumns = `
    SELECT p.id, p.employee_code, e.first_name || ' ' || e.last_name,
           p.house_amount, p.transport_amount, p.gross_salary,
           p.employee_tax, p.pension_amount, p.medical_insurance, p.other_amount,
           p.net_salary, p.month, p.year, p.status, p.created_at
    FROM payslips p
    JOIN employees e ON p.employee_code = e.code
`

func (s *Store) Get(ctx context.Context, id string) (Payslip, error) {
	p, err := scanPayslip(s.DB.QueryRow(ctx, payslipColumns+" WHERE p.id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Payslip{}, ErrNotFound
	}
	if err != nil {
		return Payslip{}, err
	}
	return p, nil
}

func (s *Store) MarkPaid(ctx context.Context, id string) (bool, error) {
	tag, err := s.DB.Exec(ctx,
		"UPDATE payslips SET status = $1 WHERE id = $2 AND status = $3",
		StatusPaid, id, StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeCode string) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx,
		payslipColumns+" WHERE p.employee_code = $1 ORDER BY p.year DESC, p.month DESC", employeeCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayslips(rows)
}

func (s *Store) ListPending(ctx context.Context, month, year int) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx,
		payslipColumns+" WHERE p.status = $1 AND p.month = $2 AND p.year = $3 ORDER BY p.employee_code",
		StatusPending, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayslips(rows)
}

func scanPayslip(row pgx.Row) (Payslip, error) {
	var p Payslip
	err := row.Scan(&p.ID, &p.EmployeeCode, &p.EmployeeName,
		&p.HouseAmount, &p.TransportAmount, &p.GrossSalary,
		&p.EmployeeTax, &p.Pension, &p.MedicalInsurance, &p.Others,
		&p.NetSalary, &p.Month, &p.Year, &p.Status, &p.CreatedAt)
	if err != nil {
		return Payslip{}, err
	}
	p.BaseSalary = p.GrossSalary - p.HouseAmount - p.TransportAmount
	return p, nil
}

func scanPayslips(rows pgx.Rows) ([]Payslip, error) {
	var out []Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
