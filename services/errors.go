package services

import "errors"

// Client-visible error taxonomy. Controllers map these to HTTP statuses;
// anything else is surfaced as a generic server error so store details never
// leak to the caller.
var (
	// Request-shape problems: generation is not attempted, nothing is written.
	ErrProfileIncomplete = errors.New("profile is incomplete")
	ErrTargetsUnset      = errors.New("daily calorie target is not set")
	ErrInvalidPeriod     = errors.New("invalid or empty date range")

	// Data-state problem, distinct from validation: the allergy/diet filters
	// eliminated every catalog item.
	ErrEmptyFoodPool = errors.New("no foods match the dietary and allergy filters")

	ErrNotFound = errors.New("record not found")
)
