package domain

import "github.com/pkg/errors"

var (
	ErrPartialDateRange  = errors.New("start_date and end_date must be provided together")
	ErrInvertedDateRange = errors.New("end_date must not be before start_date")
)
