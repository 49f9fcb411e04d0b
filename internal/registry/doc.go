// Package registry maps a (day, part) pair to the Go function that solves it.
//
// Day modules register their solvers at startup. A duplicate registration is
// a programmer error and panics; looking up a day or part that nobody
// registered is a user error and is returned as ErrUnknownDay or
// ErrUnknownPart.
package registry
