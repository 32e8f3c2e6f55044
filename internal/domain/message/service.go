package message

import (
	"context"
	"time"

	"github.com/google/uuid"

	"epms/internal/domain/identity"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Notify records a system-generated message for an employee. It carries no
// caller check; only lifecycle events produce messages.
func (s *Service) Notify(ctx context.Context, employeeCode, subject, content string) error {
	msg := Message{
		ID:           uuid.NewString(),
		EmployeeCode: employeeCode,
		Subject:      subject,
		Content:      content,
		CreatedAt:    time.Now().UTC(),
	}
	return s.store.Create(ctx, msg)
}

func (s *Service) ListByEmployee(ctx context.Context, caller identity.Principal, employeeCode string) ([]Message, error) {
	if !caller.CanManageEmployee(employeeCode) {
		return nil, identity.ErrPermissionDenied
	}
	return s.store.ListByEmployee(ctx, employeeCode)
}

func (s *Service) ListUnread(ctx context.Context, caller identity.Principal, employeeCode string) ([]Message, error) {
	if !caller.CanManageEmployee(employeeCode) {
		return nil, identity.ErrPermissionDenied
	}
	return s.store.ListUnread(ctx, employeeCode)
}

func (s *Service) CountUnread(ctx context.Context, caller identity.Principal, employeeCode string) (int, error) {
	if !caller.CanManageEmployee(employeeCode) {
		return 0, identity.ErrPermissionDenied
	}
	return s.store.CountUnread(ctx, employeeCode)
}

// MarkRead is a one-way transition; marking an already-read message again
// just refreshes read_at.
func (s *Service) MarkRead(ctx context.Context, caller identity.Principal, id string) (Message, error) {
	msg, err := s.store.Get(ctx, id)
	if err != nil {
		return Message{}, err
	}
	if !caller.CanManageEmployee(msg.EmployeeCode) {
		return Message{}, identity.ErrPermissionDenied
	}

	readAt := time.Now().UTC()
	if err := s.store.MarkRead(ctx, id, readAt); err != nil {
		return Message{}, err
	}
	msg.IsRead = true
	msg.ReadAt = &readAt
	return msg, nil
}
