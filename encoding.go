package guid

import (
	"encoding/base64"
	"encoding/hex"
)

// EncodeToHex encodes the RFC 4122 bytes as 32 hex digits.
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the RFC 4122 bytes as URL-safe base64 without padding.
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the RFC 4122 bytes as standard base64.
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// EncodeToBase64 encodes the stored SQL Server bytes as URL-safe base64
// without padding.
func (s SQLGUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(s[:])
}

// DecodeFromHex decodes 32 hex digits in RFC 4122 order.
func DecodeFromHex(s string) (UUID, error) {
	var uuid UUID
	if err := decodeFixed(uuid[:], s, hexDecode); err != nil {
		return Nil, err
	}
	return uuid, nil
}

// DecodeSQLFromHex decodes 32 hex digits that are already in SQL Server
// order, such as the output of SQLGUID.Hex or a varbinary literal.
func DecodeSQLFromHex(s string) (SQLGUID, error) {
	var g SQLGUID
	if err := decodeFixed(g[:], s, hexDecode); err != nil {
		return NilSQL, err
	}
	return g, nil
}

// DecodeFromBase64 decodes a URL-safe unpadded base64 string.
func DecodeFromBase64(s string) (UUID, error) {
	var uuid UUID
	if err := decodeFixed(uuid[:], s, base64.RawURLEncoding.DecodeString); err != nil {
		return Nil, err
	}
	return uuid, nil
}

// DecodeFromBase64Std decodes a standard base64 string.
func DecodeFromBase64Std(s string) (UUID, error) {
	var uuid UUID
	if err := decodeFixed(uuid[:], s, base64.StdEncoding.DecodeString); err != nil {
		return Nil, err
	}
	return uuid, nil
}

func hexDecode(s string) ([]byte, error) {
	if len(s) != 32 {
		return nil, ErrInvalidFormat
	}
	return hex.DecodeString(s)
}

func decodeFixed(dst []byte, s string, decode func(string) ([]byte, error)) error {
	data, err := decode(s)
	if err != nil {
		return ErrInvalidFormat
	}
	if len(data) != len(dst) {
		return ErrInvalidLength
	}
	copy(dst, data)
	return nil
}

// FromBytes creates a UUID from 16 bytes in RFC 4122 order.
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}
