// Package domain provides shared domain-level sentinel errors and identifiers.
package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a uniqueness or concurrent modification conflict.
var ErrConflict = errors.New("conflict: resource already exists or was modified")

// ErrValidation indicates the request payload failed validation.
var ErrValidation = errors.New("validation failed")

// ErrForbidden indicates the caller is not allowed to perform the operation
// on the target entity (shop-scope violation).
var ErrForbidden = errors.New("forbidden")
