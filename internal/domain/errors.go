package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidLineItem = errors.New("invalid line item")
	ErrInvalidDocument = errors.New("invalid document")
	// ErrPeriodMismatch is returned when a report shape does not support
	// the requested period granularity (quarterly GSTR-1, for example).
	ErrPeriodMismatch = errors.New("report not available for this period granularity")
	// ErrEmptyPeriod marks a period with no documents. It distinguishes
	// "nothing to file" from an engine failure; report builders return it
	// instead of an empty-but-valid report.
	ErrEmptyPeriod = errors.New("no documents in period")
)
