package sqlstore

import (
	"database/sql/driver"
	"fmt"

	mssql "github.com/microsoft/go-mssqldb"

	"github.com/Lzww0608/guid"
)

// SQLServerKey stores a guid.UUID in a SQL Server uniqueidentifier column.
// The driver writes the first three groups little-endian, so the stored
// bytes equal guid.ToSQLOrder of the key.
type SQLServerKey guid.UUID

// Value implements driver.Valuer.
func (k SQLServerKey) Value() (driver.Value, error) {
	return mssql.UniqueIdentifier(k).Value()
}

// Scan implements sql.Scanner.
func (k *SQLServerKey) Scan(src any) error {
	var u mssql.UniqueIdentifier
	if err := u.Scan(src); err != nil {
		return fmt.Errorf("sqlstore: scan uniqueidentifier: %w", err)
	}
	*k = SQLServerKey(u)
	return nil
}

// UUID returns the key in RFC order.
func (k SQLServerKey) UUID() guid.UUID { return guid.UUID(k) }

// String returns the canonical text of the key.
func (k SQLServerKey) String() string { return guid.UUID(k).String() }

// MySQLKey stores a guid.UUID in a MySQL BINARY(16) column using the
// layout of UUID_TO_BIN(x, 1): time_hi, time_mid, time_low, then the rest.
// Time-based keys generated close together share a prefix in this layout.
type MySQLKey guid.UUID

// ToMySQLOrder rearranges u into the UUID_TO_BIN(x, 1) layout.
func ToMySQLOrder(u guid.UUID) [16]byte {
	var b [16]byte
	copy(b[0:2], u[6:8])
	copy(b[2:4], u[4:6])
	copy(b[4:8], u[0:4])
	copy(b[8:], u[8:])
	return b
}

// FromMySQLOrder reverses ToMySQLOrder.
func FromMySQLOrder(b [16]byte) guid.UUID {
	var u guid.UUID
	copy(u[0:4], b[4:8])
	copy(u[4:6], b[2:4])
	copy(u[6:8], b[0:2])
	copy(u[8:], b[8:])
	return u
}

// Value implements driver.Valuer.
func (k MySQLKey) Value() (driver.Value, error) {
	b := ToMySQLOrder(guid.UUID(k))
	return b[:], nil
}

// Scan implements sql.Scanner. Text input is parsed as a canonical UUID.
func (k *MySQLKey) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		*k = MySQLKey(guid.Nil)
		return nil
	case []byte:
		if len(src) == 16 {
			var b [16]byte
			copy(b[:], src)
			*k = MySQLKey(FromMySQLOrder(b))
			return nil
		}
		return k.Scan(string(src))
	case string:
		u, err := guid.Parse(src)
		if err != nil {
			return err
		}
		*k = MySQLKey(u)
		return nil
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into MySQLKey", src)
	}
}

// UUID returns the key in RFC order.
func (k MySQLKey) UUID() guid.UUID { return guid.UUID(k) }

// String returns the canonical text of the key.
func (k MySQLKey) String() string { return guid.UUID(k).String() }
