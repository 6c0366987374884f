// Package impl contains the concrete implementations of the use cases.
package impl

import (
	"storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	pkgerrors "storefront/internal/errors"
)

// storageError maps the repository layer's storage error kinds onto the
// application error taxonomy so callers can distinguish permission, missing
// index and outage conditions. Unknown errors pass through for the delivery
// layer to log and report as internal.
func storageError(err error) error {
	switch {
	case pkgerrors.Is(err, repository.ErrPermissionDenied):
		return errors.ErrStorePermissionDenied.WrapMessage(err.Error())
	case pkgerrors.Is(err, repository.ErrIndexMissing):
		return errors.ErrStoreIndexMissing.WrapMessage(err.Error())
	case pkgerrors.Is(err, repository.ErrUnavailable):
		return errors.ErrStoreUnavailable.WrapMessage(err.Error())
	default:
		return pkgerrors.WithStack(err)
	}
}
