package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"epms/internal/domain/identity"
)

// Notifier records an in-app message for an employee.
type Notifier interface {
	Notify(ctx context.Context, employeeCode, subject, content string) error
}

// Mailer delivers an email notification.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DocumentRenderer turns a payslip into a downloadable document.
type DocumentRenderer interface {
	Render(p Payslip) ([]byte, error)
}

type Service struct {
	store    StoreAPI
	notifier Notifier
	mailer   Mailer
	renderer DocumentRenderer
	minYear  int
	logger   *slog.Logger
}

func NewService(store StoreAPI, notifier Notifier, mailer Mailer, renderer DocumentRenderer, minYear int, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		mailer:   mailer,
		renderer: renderer,
		minYear:  minYear,
		logger:   logger,
	}
}

// Generate produces a pending payslip for the employee's given period.
// The period-uniqueness check here is a fast path; the storage constraint is
// the authority under concurrent generation.
func (s *Service) Generate(ctx context.Context, caller identity.Principal, employeeCode string, month, year int) (Payslip, error) {
	if !caller.HasRole(identity.RoleManager) {
		return Payslip{}, identity.ErrPermissionDenied
	}
	if month < 1 || month > 12 || year < s.minYear {
		return Payslip{}, ErrInvalidPeriod
	}

	exists, err := s.store.ExistsForPeriod(ctx, employeeCode, month, year)
	if err != nil {
		return Payslip{}, err
	}
	if exists {
		return Payslip{}, ErrAlreadyExists
	}

	emp, err := s.store.ActiveEmployee(ctx, employeeCode)
	if err != nil {
		return Payslip{}, err
	}
	baseSalary, err := s.store.ActiveBaseSalary(ctx, employeeCode)
	if err != nil {
		return Payslip{}, err
	}

	b := ComputeAmounts(baseSalary)
	p := Payslip{
		ID:               uuid.NewString(),
		EmployeeCode:     emp.Code,
		EmployeeName:     emp.FullName(),
		BaseSalary:       b.BaseSalary,
		HouseAmount:      b.HouseAmount,
		TransportAmount:  b.TransportAmount,
		GrossSalary:      b.GrossSalary,
		EmployeeTax:      b.EmployeeTax,
		Pension:          b.Pension,
		MedicalInsurance: b.MedicalInsurance,
		Others:           b.Others,
		TotalDeductions:  b.TotalDeductions,
		NetSalary:        b.NetSalary,
		Month:            month,
		Year:             year,
		Status:           StatusPending,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, p); err != nil {
		return Payslip{}, err
	}

	// The slip is committed; notification failure must not undo it.
	if err := s.notifier.Notify(ctx, emp.Code, subjectGenerated, generationMessage(emp.FullName(), p)); err != nil {
		s.logger.Warn("failed to record payslip generation message",
			slog.String("employeeCode", emp.Code), slog.Any("error", err))
	}
	return p, nil
}

// GenerateAll runs Generate for every employee with an active employment,
// collecting per-employee failures instead of aborting the batch.
func (s *Service) GenerateAll(ctx context.Context, caller identity.Principal, employeeCodes []string, month, year int) (BatchResult, error) {
	if !caller.HasRole(identity.RoleManager) {
		return BatchResult{}, identity.ErrPermissionDenied
	}

	var result BatchResult
	for _, code := range employeeCodes {
		if _, err := s.Generate(ctx, caller, code, month, year); err != nil {
			result.Failed = append(result.Failed, BatchFailure{EmployeeCode: code, Reason: err.Error()})
			continue
		}
		result.Generated++
	}
	return result, nil
}

type BatchResult struct {
	Generated int            `json:"generated"`
	Failed    []BatchFailure `json:"failed,omitempty"`
}

type BatchFailure struct {
	EmployeeCode string `json:"employeeCode"`
	Reason       string `json:"reason"`
}

// Approve transitions a pending slip to paid. The paid state is committed
// before any notification goes out; message and email delivery are
// best-effort and logged on failure.
func (s *Service) Approve(ctx context.Context, caller identity.Principal, id string) (Payslip, error) {
	if !caller.HasRole(identity.RoleAdmin) {
		return Payslip{}, identity.ErrPermissionDenied
	}

	p, err := s.store.Get(ctx, id)
	if err != nil {
		return Payslip{}, err
	}
	if p.Status == StatusPaid {
		return Payslip{}, ErrAlreadyPaid
	}

	ok, err := s.store.MarkPaid(ctx, id)
	if err != nil {
		return Payslip{}, err
	}
	if !ok {
		return Payslip{}, ErrAlreadyPaid
	}
	p.Status = StatusPaid
	paidAt := time.Now().UTC()

	if err := s.notifier.Notify(ctx, p.EmployeeCode, subjectApproved, approvalMessage(p, paidAt)); err != nil {
		s.logger.Warn("failed to record payslip approval message",
			slog.String("payslipId", p.ID), slog.Any("error", err))
	}
	contact, err := s.store.Contact(ctx, p.EmployeeCode)
	if err != nil {
		s.logger.Warn("failed to resolve employee contact for payment email",
			slog.String("payslipId", p.ID), slog.Any("error", err))
		return p, nil
	}
	if err := s.mailer.Send(ctx, contact.Email, approvalEmailSubject(p), approvalEmailBody(contact.FullName(), p)); err != nil {
		s.logger.Warn("failed to send payment email",
			slog.String("payslipId", p.ID), slog.String("to", contact.Email), slog.Any("error", err))
	}
	return p, nil
}

// ListByEmployee is open to managers and to the employee themself.
func (s *Service) ListByEmployee(ctx context.Context, caller identity.Principal, employeeCode string) ([]Payslip, error) {
	if !caller.HasRole(identity.RoleManager) && !caller.IsCurrentUser(employeeCode) {
		return nil, identity.ErrPermissionDenied
	}
	return s.store.ListByEmployee(ctx, employeeCode)
}

func (s *Service) ListPending(ctx context.Context, caller identity.Principal, month, year int) ([]Payslip, error) {
	if !caller.HasRole(identity.RoleManager) {
		return nil, identity.ErrPermissionDenied
	}
	return s.store.ListPending(ctx, month, year)
}

// Download renders the slip as a PDF and suggests a stable filename.
func (s *Service) Download(ctx context.Context, caller identity.Principal, id string) ([]byte, string, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !caller.HasRole(identity.RoleManager) && !caller.IsCurrentUser(p.EmployeeCode) {
		return nil, "", identity.ErrPermissionDenied
	}

	doc, err := s.renderer.Render(p)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	filename := fmt.Sprintf("payslip-%s-%d-%d.pdf", p.EmployeeCode, p.Month, p.Year)
	return doc, filename, nil
}
