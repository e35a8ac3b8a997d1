package usecase

import "errors"

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("record not found")

// ErrStoreUnavailable wraps failures of the underlying store call (network,
// throttling, permissions). Handlers match it with errors.Is.
var ErrStoreUnavailable = errors.New("store unavailable")
