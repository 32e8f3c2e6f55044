package employee

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

func (s *Store) Count(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE email = $1", email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Create(ctx context.Context, emp Employee, passwordHash string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (code, first_name, last_name, email, password_hash, mobile, date_of_birth, roles, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
  `, emp.Code, emp.FirstName, emp.LastName, emp.Email, passwordHash, emp.Mobile, emp.DateOfBirth, emp.Roles, emp.Status)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (s *Store) GetActiveByCode(ctx context.Context, code string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT code, first_name, last_name, email, COALESCE(mobile, ''), date_of_birth, roles, status, created_at
    FROM employees
    WHERE code = $1 AND status = $2
  `, code, StatusActive).Scan(&emp.Code, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Mobile, &emp.DateOfBirth, &emp.Roles, &emp.Status, &emp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (Employee, string, error) {
	var emp Employee
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT code, first_name, last_name, email, COALESCE(mobile, ''), date_of_birth, roles, status, created_at, password_hash
    FROM employees
    WHERE email = $1
  `, email).Scan(&emp.Code, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Mobile, &emp.DateOfBirth, &emp.Roles, &emp.Status, &emp.CreatedAt, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, "", ErrNotFound
	}
	if err != nil {
		return Employee{}, "", err
	}
	return emp, hash, nil
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT code, first_name, last_name, email, COALESCE(mobile, ''), date_of_birth, roles, status, created_at
    FROM employees
    ORDER BY created_at
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.Code, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Mobile, &emp.DateOfBirth, &emp.Roles, &emp.Status, &emp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, code string, params UpdateParams) error {
	if params.PasswordHash != "" {
		_, err := s.DB.Exec(ctx, `
      UPDATE employees
      SET first_name = $1, last_name = $2, mobile = $3, date_of_birth = $4, password_hash = $5, updated_at = now()
      WHERE code = $6 AND status = $7
    `, params.FirstName, params.LastName, params.Mobile, params.DateOfBirth, params.PasswordHash, code, StatusActive)
		return err
	}
	_, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1, last_name = $2, mobile = $3, date_of_birth = $4, updated_at = now()
    WHERE code = $5 AND status = $6
  `, params.FirstName, params.LastName, params.Mobile, params.DateOfBirth, code, StatusActive)
	return err
}

func (s *Store) Disable(ctx context.Context, code string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET status = $1, updated_at = now() WHERE code = $2 AND status = $3
  `, StatusDisabled, code, StatusActive)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
