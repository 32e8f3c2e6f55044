package deduction

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

func (s *Store) Create(ctx context.Context, ded Deduction) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO deductions (code, deduction_name, percentage)
    VALUES ($1,$2,$3)
  `, ded.Code, ded.DeductionName, ded.Percentage)
	if isUniqueViolation(err) {
		return ErrNameTaken
	}
	return err
}

func (s *Store) GetByCode(ctx context.Context, code string) (Deduction, error) {
	var ded Deduction
	err := s.DB.QueryRow(ctx, `
    SELECT code, deduction_name, percentage FROM deductions WHERE code = $1
  `, code).Scan(&ded.Code, &ded.DeductionName, &ded.Percentage)
	if errors.Is(err, pgx.ErrNoRows) {
		return Deduction{}, ErrNotFound
	}
	if err != nil {
		return Deduction{}, err
	}
	return ded, nil
}

func (s *Store) List(ctx context.Context) ([]Deduction, error) {
	rows, err := s.DB.Query(ctx, "SELECT code, deduction_name, percentage FROM deductions ORDER BY deduction_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Deduction
	for rows.Next() {
		var ded Deduction
		if err := rows.Scan(&ded.Code, &ded.DeductionName, &ded.Percentage); err != nil {
			return nil, err
		}
		out = append(out, ded)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, ded Deduction) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE deductions SET deduction_name = $1, percentage = $2 WHERE code = $3
  `, ded.DeductionName, ded.Percentage, ded.Code)
	if isUniqueViolation(err) {
		return ErrNameTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, code string) (bool, error) {
	tag, err := s.DB.Exec(ctx, "DELETE FROM deductions WHERE code = $1", code)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
