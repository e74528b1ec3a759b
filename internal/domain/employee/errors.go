package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameExists       = errors.New("an employee with this name already exists")
	ErrInvalidName      = errors.New("employee name must not be empty")
	ErrPartialDeletion  = errors.New("employee deletion incomplete, records removed but identity remains")
)
