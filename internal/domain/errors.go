package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
)

// Content validation failures are a species of ErrInvalidInput so callers
// can match either the specific or the general category.
var (
	ErrEmptyContent   = fmt.Errorf("%w: post content is required", ErrInvalidInput)
	ErrContentTooLong = fmt.Errorf("%w: post content cannot exceed %d characters", ErrInvalidInput, MaxPostLength)
)

// MaxPostLength is the maximum post content length in Unicode code points.
const MaxPostLength = 1000
