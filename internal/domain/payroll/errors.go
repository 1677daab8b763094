package payroll

import "errors"

var (
	ErrRecordNotFound = errors.New("payroll record not found")
	ErrSlipNotFound   = errors.New("salary slip not found")
	ErrDuplicateID    = errors.New("payroll id already exists")
)
