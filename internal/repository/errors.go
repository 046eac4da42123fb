// Package repository implements data access over database/sql.  This file
// defines sentinel error values shared across repositories so that handlers
// and services can distinguish failure scenarios without inspecting driver
// errors.  Per-entity not-found sentinels live next to their repository.
package repository

import "errors"

// ErrNoStock is returned by the conditional stock decrement when a movie has
// no copies left.  The condition lives in the UPDATE statement itself, so two
// concurrent rentals of the last copy cannot both succeed.  Handlers should
// translate this into an HTTP 400 response.
var ErrNoStock = errors.New("movie out of stock")

// ErrEmailExists is returned when creating a user with an email that is
// already registered.  Handlers should translate this into an HTTP 400
// response.
var ErrEmailExists = errors.New("email already exists")
