package employee

import "errors"

var (
	ErrInvalidID                = errors.New("employee: invalid id")
	ErrInvalidName              = errors.New("employee: invalid name")
	ErrInvalidPosition          = errors.New("employee: invalid position")
	ErrInvalidEmail             = errors.New("employee: invalid email")
	ErrInvalidPerformanceRating = errors.New("employee: invalid performance rating")
	ErrInvalidVacationDays      = errors.New("employee: invalid vacation days")
	ErrInsufficientVacationDays = errors.New("employee: insufficient vacation days")
	ErrInvalidIndex             = errors.New("employee: invalid list index")
	ErrInvalidNotificationKind  = errors.New("employee: invalid notification kind")
	ErrEmployeeNotFound         = errors.New("employee: not found")
)
