package services

import "errors"

// Domain errors raised at the service boundary. Handlers translate them 1:1
// into HTTP status codes; nothing below the service raises them.
var (
	// ErrStoreUnavailable means no document store handle was configured
	// at startup.
	ErrStoreUnavailable = errors.New("database not configured")
	// ErrProductNotFound means a well-formed id has no matching record.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProductID means the caller-supplied id is not well-formed.
	ErrInvalidProductID = errors.New("invalid product id")
)
