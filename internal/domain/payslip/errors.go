package payslip

import "errors"

var (
	ErrNotFound           = errors.New("payslip not found")
	ErrAlreadyExists      = errors.New("payslip already exists for this month and year")
	ErrAlreadyPaid        = errors.New("payslip has already been paid")
	ErrInvalidPeriod      = errors.New("invalid payslip period")
	ErrEmployeeNotFound   = errors.New("active employee not found")
	ErrEmploymentNotFound = errors.New("no active employment for employee")
	ErrRenderFailed       = errors.New("failed to render payslip document")
)
