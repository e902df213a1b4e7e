package derive

import "errors"

var (
	// ErrVerification is returned by Verify when the matrix form does not
	// reproduce the equations or T2·T3 is not the identity.
	ErrVerification = errors.New("derive: verification failed")

	// ErrUnknownFormat is returned for an unsupported output format name.
	ErrUnknownFormat = errors.New("derive: unknown output format")
)
