package payslip

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewStore(mock), mock
}

func TestStoreExistsForPeriod(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT EXISTS(SELECT 1 FROM payslips WHERE employee_code = $1 AND month = $2 AND year = $3)")).
		WithArgs("emp-1", 3, 2026).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := store.ExistsForPeriod(context.Background(), "emp-1", 3, 2026)
	if err != nil {
		t.Fatalf("ExistsForPeriod returned error: %v", err)
	}
	if !exists {
		t.Fatalf("expected exists = true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreActiveEmployeeNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT code, first_name, last_name, email FROM employees WHERE code = $1 AND status = 'ACTIVE'")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.ActiveEmployee(context.Background(), "ghost")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestStoreActiveBaseSalaryMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT base_salary FROM employments WHERE employee_code = $1 AND status = 'ACTIVE'")).
		WithArgs("emp-1").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.ActiveBaseSalary(context.Background(), "emp-1")
	if !errors.Is(err, ErrEmploymentNotFound) {
		t.Fatalf("expected ErrEmploymentNotFound, got %v", err)
	}
}

func TestStoreInsertTranslatesUniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)

	p := Payslip{
		ID:           "slip-1",
		EmployeeCode: "emp-1",
		Month:        3,
		Year:         2026,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO payslips").
		WithArgs(p.ID, p.EmployeeCode, p.HouseAmount, p.TransportAmount, p.GrossSalary,
			p.EmployeeTax, p.Pension, p.MedicalInsurance, p.Others,
			p.NetSalary, p.Month, p.Year, p.Status, p.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	if err := store.Insert(context.Background(), p); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestStoreMarkPaid(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE payslips SET status = $1 WHERE id = $2 AND status = $3")).
		WithArgs(StatusPaid, "slip-1", StatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := store.MarkPaid(context.Background(), "slip-1")
	if err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected MarkPaid to report a transition")
	}
}

func TestStoreMarkPaidAlreadyPaid(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE payslips SET status = $1 WHERE id = $2 AND status = $3")).
		WithArgs(StatusPaid, "slip-1", StatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := store.MarkPaid(context.Background(), "slip-1")
	if err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected no transition for a non-pending slip")
	}
}

func TestStoreGetDerivesBaseSalary(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "employee_code", "name", "house_amount", "transport_amount", "gross_salary",
		"employee_tax", "pension_amount", "medical_insurance", "other_amount",
		"net_salary", "month", "year", "status", "created_at",
	}).AddRow("slip-1", "emp-1", "Jane Doe", 14000.0, 14000.0, 128000.0,
		30000.0, 6000.0, 5000.0, 5000.0, 82000.0, 3, 2026, StatusPending, now)

	mock.ExpectQuery("SELECT p.id, p.employee_code").
		WithArgs("slip-1").
		WillReturnRows(rows)

	p, err := store.Get(context.Background(), "slip-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if p.BaseSalary != 100000 {
		t.Fatalf("base salary = %v, want 100000", p.BaseSalary)
	}
	if p.EmployeeName != "Jane Doe" {
		t.Fatalf("employee name = %q", p.EmployeeName)
	}
}

func TestStoreGetNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT p.id, p.employee_code").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
