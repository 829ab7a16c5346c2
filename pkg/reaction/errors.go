package reaction

import "errors"

var (
	// ErrNilError is carried by an error reaction created from a nil error.
	ErrNilError = errors.New("reaction: error reaction created with nil error")
)
