package message

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"epms/internal/platform/db"
)

const foreignKeyViolationCode = "23503"

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) Create(ctx context.Context, msg Message) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO messages (id, employee_code, subject, content, is_read, created_at)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, msg.ID, msg.EmployeeCode, msg.Subject, msg.Content, msg.IsRead, msg.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return ErrEmployeeNotFound
	}
	return err
}

const messageColumns = `
    SELECT m.id, m.employee_code, e.first_name || ' ' || e.last_name,
           m.subject, m.content, m.is_read, m.created_at, m.read_at
    FROM messages m
    JOIN employees e ON m.employee_code = e.code
`

func (s *Store) Get(ctx context.Context, id string) (Message, error) {
	var msg Message
	err := s.DB.QueryRow(ctx, messageColumns+" WHERE m.id = $1", id).
		Scan(&msg.ID, &msg.EmployeeCode, &msg.EmployeeName, &msg.Subject, &msg.Content, &msg.IsRead, &msg.CreatedAt, &msg.ReadAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Message{}, ErrNotFound
	}
	if err != nil {
		return Message{}, err
	}
	return msg, nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeCode string) ([]Message, error) {
	rows, err := s.DB.Query(ctx, messageColumns+" WHERE m.employee_code = $1 ORDER BY m.created_at DESC", employeeCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (s *Store) ListUnread(ctx context.Context, employeeCode string) ([]Message, error) {
	rows, err := s.DB.Query(ctx, messageColumns+" WHERE m.employee_code = $1 AND m.is_read = false ORDER BY m.created_at DESC", employeeCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (s *Store) CountUnread(ctx context.Context, employeeCode string) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM messages WHERE employee_code = $1 AND is_read = false", employeeCode).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	_, err := s.DB.Exec(ctx, "UPDATE messages SET is_read = true, read_at = $1 WHERE id = $2", readAt, id)
	return err
}

func scanMessages(rows pgx.Rows) ([]Message, error) {
	var out []Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.EmployeeCode, &msg.EmployeeName, &msg.Subject, &msg.Content, &msg.IsRead, &msg.CreatedAt, &msg.ReadAt); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}
