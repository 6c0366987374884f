package firestore

import (
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// translateError converts a Firestore RPC error into the repository layer's
// error kinds. This is the only place in the system that inspects vendor
// status codes; notFound names the aggregate-specific sentinel to use for
// codes.NotFound.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	switch status.Code(errors.Cause(err)) {
	case codes.NotFound:
		return notFound
	case codes.AlreadyExists:
		return errors.Wrap(repository.ErrAlreadyExists, err.Error())
	case codes.PermissionDenied, codes.Unauthenticated:
		return errors.Wrap(repository.ErrPermissionDenied, err.Error())
	case codes.FailedPrecondition:
		// Firestore reports a missing composite index as FailedPrecondition
		// with a console link in the message. Keep it distinct so operators
		// see the diagnostic.
		return errors.Wrap(repository.ErrIndexMissing, err.Error())
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return errors.Wrap(repository.ErrUnavailable, err.Error())
	default:
		return errors.WithStack(err)
	}
}
