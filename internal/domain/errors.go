package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPlayNotFound is returned when a performance references a play id
	// that is absent from the catalog.
	ErrPlayNotFound = errors.New("play not found")

	// ErrUnknownGenre is returned when no pricing strategy is registered for
	// a play's genre.
	ErrUnknownGenre = errors.New("unknown genre")
)

// PlayNotFoundError names the missing play id.
type PlayNotFoundError struct {
	PlayID string
}

func (e *PlayNotFoundError) Error() string {
	return fmt.Sprintf("play not found: %q", e.PlayID)
}

func (e *PlayNotFoundError) Unwrap() error { return ErrPlayNotFound }

// UnknownGenreError names the genre that has no pricing strategy.
type UnknownGenreError struct {
	Genre string
}

func (e *UnknownGenreError) Error() string {
	return fmt.Sprintf("unknown genre: %q", e.Genre)
}

func (e *UnknownGenreError) Unwrap() error { return ErrUnknownGenre }

// InvoiceError records which invoice a failure aborted.
type InvoiceError struct {
	Index    int
	Customer string
	Err      error
}

func (e *InvoiceError) Error() string {
	return fmt.Sprintf("invoice %d (%s): %v", e.Index, e.Customer, e.Err)
}

func (e *InvoiceError) Unwrap() error { return e.Err }

// IsInputError reports whether err was caused by incomplete input data
// rather than an environmental failure. Input errors are never retried.
func IsInputError(err error) bool {
	return errors.Is(err, ErrPlayNotFound) || errors.Is(err, ErrUnknownGenre)
}
