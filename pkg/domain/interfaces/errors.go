package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by any repository when the requested entity
// does not exist. Backends wrap it so callers can match with errors.Is
// regardless of the storage engine.
var ErrNotFound = goerr.New("not found")

// ErrSlugTaken is returned when an organization slug is already in use
var ErrSlugTaken = goerr.New("slug already taken")
