package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation (HTTP 400).
var ErrInvalid = errors.New("invalid input")

// ErrInvalidFormat is returned for a malformed "HH:mm" time string (HTTP 400).
var ErrInvalidFormat = errors.New("invalid format")

// ErrDuplicateKey indicates the id is already registered (HTTP 400).
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNotFound indicates that the referenced order or partner does not exist.
var ErrNotFound = errors.New("not found")
