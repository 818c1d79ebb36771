package guid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("guid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("guid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version is not one this package generates
	ErrInvalidVersion = errors.New("guid: invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("guid: invalid UUID variant (expected RFC 4122)")

	// ErrInvalidArgument is returned when a fixed-size input has the wrong length
	// or a required collaborator is missing.
	ErrInvalidArgument = errors.New("guid: invalid argument")

	// ErrEntropy wraps failures of the random source. It is never retried.
	ErrEntropy = errors.New("guid: random source failed")

	// ErrSerialize wraps errors returned by a fingerprint serializer.
	ErrSerialize = errors.New("guid: serializer failed")
)
