// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrMovieNotFound indicates that a lookup key matched no
// movie document, while ErrUsernameExists signals that a signup
// cannot proceed because the unique index on usernames rejected
// the insert. Handlers translate these into HTTP status codes.
package repository

import "errors"

// ErrMovieNotFound is returned when a movie lookup, update or delete
// matches no document. Handlers should translate this into an HTTP
// 404 response.
var ErrMovieNotFound = errors.New("movie not found")

// ErrUserNotFound is returned when no user exists for the given
// username. The signin handler translates this into an HTTP 401
// response rather than 404 so that probing for accounts and failing
// a password check look the same to a client.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when an insert violates the unique
// index on users.username. Handlers should translate this into an
// HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")
