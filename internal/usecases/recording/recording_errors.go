package recording

import "github.com/pkg/errors"

var (
	ErrMissingRequiredData = errors.New("required fields are missing")
	ErrInvalidDate         = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidSaleKind     = errors.New("sale type must be general or content")
	ErrInvalidPlatform     = errors.New("unknown platform")
	ErrRecordIDRequired    = errors.New("record ID is required")
	ErrGenerateID          = errors.New("error generating record ID")
)
