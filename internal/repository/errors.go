// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting SQL errors: ErrForbidden indicates the current user is
// not authorized to act on a resource owned by someone else, while
// ErrConflict signals that an operation cannot proceed because of
// existing dependent state (e.g. paying a reservation twice).
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an insert or update cannot be
// performed because of conflicting state, such as creating a second
// payment for a reservation. Handlers should translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrInsufficientPoints is returned when a point deduction would
// take the user's balance below zero.
var ErrInsufficientPoints = errors.New("insufficient points")
