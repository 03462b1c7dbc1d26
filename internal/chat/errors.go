package chat

import "errors"

// Storage and validation outcomes surfaced to the HTTP layer. Handlers map
// them to status codes; anything else becomes a 500.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrInvalidRequest = errors.New("invalid request")
)
