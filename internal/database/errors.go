package database

import "errors"

// ErrNotFound is returned when a document does not exist in its collection.
// Handlers map it to a 404.
var ErrNotFound = errors.New("document not found")

// ErrInvalidID is returned when an id is not a valid document id
var ErrInvalidID = errors.New("invalid document id")
