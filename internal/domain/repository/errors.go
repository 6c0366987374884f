// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "errors"

// Storage error kinds. The infrastructure layer translates vendor-specific
// codes into these sentinels exactly once; nothing above it ever inspects a
// vendor error.
var (
	// ErrPermissionDenied is returned when the caller lacks rights for the
	// requested collection or operation.
	ErrPermissionDenied = errors.New("permission denied by storage")

	// ErrUnavailable is returned when the backing store is unreachable.
	// It is never retried automatically.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrIndexMissing is returned when a query needs an index the store does
	// not have. Kept distinct from ErrUnavailable so operators get an
	// actionable diagnostic.
	ErrIndexMissing = errors.New("storage index missing")

	// ErrAlreadyExists is returned when a create collides with an existing
	// document.
	ErrAlreadyExists = errors.New("document already exists")
)
