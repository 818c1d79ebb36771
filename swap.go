package guid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
)

// SQLGUID holds an identifier in the mixed-endian order SQL Server uses for
// uniqueidentifier storage and comparison (and .NET uses for
// Guid.ToByteArray): time_low, time_mid and time_hi_and_version are
// little-endian, the remaining eight bytes are unchanged.
type SQLGUID [16]byte

// NilSQL is the all-zero SQLGUID.
var NilSQL SQLGUID

// SwapByteOrder reverses bytes 0-3, 4-5 and 6-7 independently and leaves
// bytes 8-15 alone. It converts between RFC 4122 order and SQL Server order
// in either direction; applying it twice returns the input.
func SwapByteOrder(b [16]byte) [16]byte {
	return [16]byte{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}

// ToSQLOrder returns u laid out the way SQL Server stores and compares it.
func ToSQLOrder(u UUID) SQLGUID {
	return SQLGUID(SwapByteOrder(u))
}

// FromSQLOrder is the inverse of ToSQLOrder.
func FromSQLOrder(s SQLGUID) UUID {
	return UUID(SwapByteOrder(s))
}

// ParseSQL parses the canonical text of an identifier and returns it in
// SQL Server order. The text form is the same for both orderings.
func ParseSQL(s string) (SQLGUID, error) {
	u, err := Parse(s)
	if err != nil {
		return NilSQL, err
	}
	return ToSQLOrder(u), nil
}

// SQLFromBytes copies 16 bytes that are already in SQL Server order.
func SQLFromBytes(b []byte) (SQLGUID, error) {
	var s SQLGUID
	if len(b) != 16 {
		return s, ErrInvalidLength
	}
	copy(s[:], b)
	return s, nil
}

// UUID converts back to RFC 4122 order.
func (s SQLGUID) UUID() UUID {
	return FromSQLOrder(s)
}

// String returns the canonical text of the identifier, which is what SQL
// Server prints for a uniqueidentifier. It is equal to s.UUID().String().
func (s SQLGUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], SwapByteOrder(s))
	return string(buf[:])
}

// Hex returns the stored bytes as 32 hex digits, without reordering.
func (s SQLGUID) Hex() string {
	return hex.EncodeToString(s[:])
}

// Bytes returns a copy of the stored bytes.
func (s SQLGUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, s[:])
	return b
}

// Version reads the version nibble, which sits in the top of byte 7 in
// this order.
func (s SQLGUID) Version() Version {
	return Version(s[7] >> 4)
}

// IsNil reports whether s is all zeros.
func (s SQLGUID) IsNil() bool {
	return s == NilSQL
}

// Compare orders two values byte by byte in SQL Server layout.
func (s SQLGUID) Compare(other SQLGUID) int {
	for i := 0; i < 16; i++ {
		switch {
		case s[i] < other[i]:
			return -1
		case s[i] > other[i]:
			return 1
		}
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler using the canonical text.
func (s SQLGUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], SwapByteOrder(s))
	return buf[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SQLGUID) UnmarshalText(data []byte) error {
	id, err := ParseSQL(string(data))
	if err != nil {
		return err
	}
	*s = id
	return nil
}

// Scan implements sql.Scanner. Sixteen raw bytes are taken as stored by
// SQL Server; text is parsed as the canonical form.
func (s *SQLGUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case []byte:
		switch len(src) {
		case 0:
			return nil
		case 16:
			copy(s[:], src)
			return nil
		}
		return s.UnmarshalText(src)
	case string:
		if src == "" {
			return nil
		}
		return s.UnmarshalText([]byte(src))
	default:
		return fmt.Errorf("guid: cannot scan type %T into SQLGUID", src)
	}
}

// Value implements driver.Valuer and sends the 16 stored bytes.
func (s SQLGUID) Value() (driver.Value, error) {
	return s.Bytes(), nil
}
