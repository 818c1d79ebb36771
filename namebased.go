package guid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// Well known namespace IDs from RFC 4122 Appendix C.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NewHash builds a name-based UUID from the digest h computes over
// namespace followed by name. Only the first 16 bytes of the digest are
// used. The version nibble is replaced by v and the variant bits are set to
// RFC 4122; every other bit comes from the digest, so the result is fully
// determined by its inputs.
//
// h is reset before use. name may be empty.
func NewHash(h hash.Hash, namespace UUID, name []byte, v Version) UUID {
	h.Reset()
	h.Write(namespace[:])
	h.Write(name)
	sum := h.Sum(nil)

	var u UUID
	copy(u[:], sum[:16])
	u[6] = (u[6] & 0x0f) | byte(v)<<4
	u[8] = (u[8] & 0x3f) | 0x80
	return u
}

// NewMD5 returns a version 3 UUID for name within namespace.
func NewMD5(namespace UUID, name []byte) UUID {
	return NewHash(md5.New(), namespace, name, VersionNameBasedMD5)
}

// NewSHA1 returns a version 5 UUID for name within namespace.
func NewSHA1(namespace UUID, name []byte) UUID {
	return NewHash(sha1.New(), namespace, name, VersionNameBasedSHA1)
}

// NewMD5String is NewMD5 for a string name.
func NewMD5String(namespace UUID, name string) UUID {
	return NewMD5(namespace, []byte(name))
}

// NewSHA1String is NewSHA1 for a string name.
func NewSHA1String(namespace UUID, name string) UUID {
	return NewSHA1(namespace, []byte(name))
}

// NamespaceByName resolves the short names "dns", "url", "oid" and "x500".
// Anything else is parsed as a UUID literal.
func NamespaceByName(name string) (UUID, error) {
	switch name {
	case "dns", "DNS":
		return NamespaceDNS, nil
	case "url", "URL":
		return NamespaceURL, nil
	case "oid", "OID":
		return NamespaceOID, nil
	case "x500", "X500":
		return NamespaceX500, nil
	}
	return Parse(name)
}
