package domain

import (
	"fmt"
	"strconv"
)

// ID is the canonical numeric identifier for all stored entities.
// Route parameters and JSON payloads may carry ids as strings; ParseID
// normalizes them once at the boundary so "5" and 5 always compare equal.
type ID int64

// Zero reports whether the ID is unset.
func (id ID) Zero() bool { return id == 0 }

// String returns the decimal representation.
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseID converts a decimal string into an ID.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, ErrValidation)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid id %d: %w", n, ErrValidation)
	}
	return ID(n), nil
}
