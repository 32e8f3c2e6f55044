package message

import "errors"

var (
	ErrNotFound         = errors.New("message not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
