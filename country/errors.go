package country

import (
	"errors"
)

// Classified failure modes of the resolution pipeline. The dispatcher maps
// these to a failed task with explanatory text, never to a protocol error.
var (
	// ErrNotRecognized indicates no country-like token was found in the input.
	ErrNotRecognized = errors.New("no country name recognised in message")

	// ErrCountryNotFound indicates the data source has no match for the name.
	ErrCountryNotFound = errors.New("country not found")

	// ErrGenerationUnavailable indicates the language model collaborator
	// errored or ran out of its share of the deadline.
	ErrGenerationUnavailable = errors.New("cultural fact generation unavailable")

	// ErrDeadlineExceeded indicates the overall resolution deadline expired.
	ErrDeadlineExceeded = errors.New("resolution deadline exceeded")
)
