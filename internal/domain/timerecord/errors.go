package timerecord

import "errors"

// Time record domain errors
var (
	ErrRecordNotFound  = errors.New("time record not found")
	ErrDuplicateRecord = errors.New("time record already exists for this employee and date")
	ErrUnknownStatus   = errors.New("unknown attendance status")
	ErrInvalidDate     = errors.New("invalid date format, expected YYYY-MM-DD")
)
