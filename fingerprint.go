package guid

import (
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"hash"
	"reflect"
)

// Fingerprint is a name-based UUID derived from a serialized value. Equal
// serializations under the same namespace give equal fingerprints.
type Fingerprint UUID

// NullFingerprint is the all-zero fingerprint, used for "not computed".
var NullFingerprint Fingerprint

// HashKind selects the digest a Fingerprinter uses.
type HashKind byte

const (
	// SHA1 produces version 5 fingerprints. It is the default.
	SHA1 HashKind = iota
	// MD5 produces version 3 fingerprints.
	MD5
)

func (k HashKind) new() (hash.Hash, Version) {
	if k == MD5 {
		return md5.New(), VersionNameBasedMD5
	}
	return sha1.New(), VersionNameBasedSHA1
}

// String returns "sha1" or "md5".
func (k HashKind) String() string {
	if k == MD5 {
		return "md5"
	}
	return "sha1"
}

// Fingerprinter hashes names into fingerprints under a fixed namespace.
type Fingerprinter struct {
	Namespace UUID
	Hash      HashKind
}

// Of returns the fingerprint of an already serialized value.
func (f Fingerprinter) Of(name []byte) Fingerprint {
	h, v := f.Hash.new()
	return Fingerprint(NewHash(h, f.Namespace, name, v))
}

// FingerprintWith serializes value and fingerprints the bytes with f. Nil
// values yield NullFingerprint and serialize is not called.
func FingerprintWith[T any](f Fingerprinter, value T, serialize func(T) ([]byte, error)) (Fingerprint, error) {
	if serialize == nil {
		return NullFingerprint, fmt.Errorf("%w: nil serializer", ErrInvalidArgument)
	}
	if isNilValue(value) {
		return NullFingerprint, nil
	}
	name, err := serialize(value)
	if err != nil {
		return NullFingerprint, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return f.Of(name), nil
}

// FingerprintOf is FingerprintWith using SHA-1 under namespace.
//
// The result is only reproducible when serialize is deterministic: an
// encoder that writes timestamps or iterates maps in random order gives a
// different fingerprint on every call.
func FingerprintOf[T any](value T, serialize func(T) ([]byte, error), namespace UUID) (Fingerprint, error) {
	return FingerprintWith(Fingerprinter{Namespace: namespace}, value, serialize)
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// UUID returns the fingerprint as a UUID.
func (f Fingerprint) UUID() UUID { return UUID(f) }

// IsNull reports whether f is NullFingerprint.
func (f Fingerprint) IsNull() bool { return f == NullFingerprint }

// String returns the canonical UUID text.
func (f Fingerprint) String() string { return UUID(f).String() }

// MarshalText implements encoding.TextMarshaler.
func (f Fingerprint) MarshalText() ([]byte, error) { return UUID(f).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fingerprint) UnmarshalText(data []byte) error {
	return (*UUID)(f).UnmarshalText(data)
}
