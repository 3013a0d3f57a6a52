package repositories

import "errors"

// ErrNotFound is returned when a row with the requested id does not exist.
// Handlers translate it into a 404 response.
var ErrNotFound = errors.New("record not found")
