package message

import (
	"context"
	"time"
)

type StoreAPI interface {
	Create(ctx context.Context, msg Message) error
	Get(ctx context.Context, id string) (Message, error)
	ListByEmployee(ctx context.Context, employeeCode string) ([]Message, error)
	ListUnread(ctx context.Context, employeeCode string) ([]Message, error)
	CountUnread(ctx context.Context, employeeCode string) (int, error)
	MarkRead(ctx context.Context, id string, readAt time.Time) error
}
