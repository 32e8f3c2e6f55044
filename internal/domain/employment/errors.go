package employment

import "errors"

var (
	ErrNotFound         = errors.New("employment not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrActiveExists     = errors.New("active employment already exists for this employee")
)
