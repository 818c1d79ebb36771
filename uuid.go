package guid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID is a 128-bit identifier stored in RFC 4122 network byte order, the
// same order in which its canonical text is written.
//
// The mixed-endian order used by SQL Server is a different type, SQLGUID.
// Use ToSQLOrder and FromSQLOrder to move between them.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
)

// String returns a short name for the version.
func (v Version) String() string {
	switch v {
	case VersionTimeBased:
		return "time-based"
	case VersionDCESecurity:
		return "dce-security"
	case VersionNameBasedMD5:
		return "name-based-md5"
	case VersionRandom:
		return "random"
	case VersionNameBasedSHA1:
		return "name-based-sha1"
	default:
		return fmt.Sprintf("version-%d", byte(v))
	}
}

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// String returns the variant name: ncs, rfc4122, microsoft or future.
func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "ncs"
	case VariantRFC4122:
		return "rfc4122"
	case VariantMicrosoft:
		return "microsoft"
	default:
		return "future"
	}
}

// Nil is the all-zero UUID. It is the "no identifier" value for every
// flavour produced by this package.
var Nil UUID

// Version returns the version nibble (top four bits of time_hi_and_version).
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// Validate reports whether u carries the RFC 4122 variant and one of the
// versions generated here (1, 3 or 5).
func (u UUID) Validate() error {
	if u.Variant() != VariantRFC4122 {
		return ErrInvalidVariant
	}
	switch u.Version() {
	case VersionTimeBased, VersionNameBasedMD5, VersionNameBasedSHA1:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidVersion, u.Version())
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

func encodeHex(dst []byte, u [16]byte) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//
// Hex digits may be upper or lower case.
func Parse(s string) (UUID, error) {
	var uuid UUID

	if len(s) >= 9 && strings.EqualFold(s[:9], "urn:uuid:") {
		s = s[9:]
	} else if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
		s = s[1 : len(s)-1]
	}

	switch len(s) {
	case 36:
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return uuid, ErrInvalidFormat
		}
		segments := [...]struct{ dst, src [2]int }{
			{[2]int{0, 4}, [2]int{0, 8}},
			{[2]int{4, 6}, [2]int{9, 13}},
			{[2]int{6, 8}, [2]int{14, 18}},
			{[2]int{8, 10}, [2]int{19, 23}},
			{[2]int{10, 16}, [2]int{24, 36}},
		}
		for _, seg := range segments {
			if err := decodeHexSegment(uuid[seg.dst[0]:seg.dst[1]], s[seg.src[0]:seg.src[1]]); err != nil {
				return Nil, err
			}
		}
		return uuid, nil
	case 32:
		if err := decodeHexSegment(uuid[:], s); err != nil {
			return Nil, err
		}
		return uuid, nil
	}

	return uuid, ErrInvalidFormat
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guid: Parse(%q): %v", s, err))
	}
	return uuid
}

func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Bytes returns a copy of the 16 bytes in RFC 4122 order.
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
// The bytes are in RFC 4122 order.
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface. Sixteen raw bytes are taken
// to be in RFC 4122 order; columns holding SQL Server order must be
// scanned into a SQLGUID instead.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		if src == "" {
			return nil
		}
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("guid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare orders two UUIDs by their RFC 4122 bytes. The result is 0 if
// u==other, -1 if u < other, and +1 if u > other.
//
// This is not the order SQL Server uses; see CompareSQL and
// CompareSQLServer.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
