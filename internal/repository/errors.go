// Package repository defines error values shared across the individual
// repositories.  These sentinels let handlers distinguish failure
// scenarios without string matching: ErrEventNotFound maps to HTTP 404,
// ErrEmailExists to 409.  Ownership failures use the inventory package
// sentinels instead, since ownership is a domain rule, not a storage
// one.
package repository

import "errors"

// ErrEventNotFound indicates the requested event row does not exist.
var ErrEventNotFound = errors.New("event not found")

// ErrEmailExists is returned on registration when the email address is
// already taken.
var ErrEmailExists = errors.New("email already exists")
