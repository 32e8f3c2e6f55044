package deduction

import "errors"

var (
	ErrNotFound  = errors.New("deduction not found")
	ErrNameTaken = errors.New("deduction with this name already exists")
)
