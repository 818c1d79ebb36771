package guid

import "slices"

// CompareSQL orders a and b by the bytes of their SQL Server layout: both
// are converted with ToSQLOrder and compared byte by byte from the first
// stored byte. It is a total order and returns 0 only when a == b.
//
// This is not the order SQL Server itself uses for ORDER BY on a
// uniqueidentifier column; see CompareSQLServer.
func CompareSQL(a, b UUID) int {
	return ToSQLOrder(a).Compare(ToSQLOrder(b))
}

// SortSQL sorts ids in place by CompareSQL.
func SortSQL(ids []UUID) {
	slices.SortFunc(ids, CompareSQL)
}

// SortRFC sorts ids in place by their RFC 4122 bytes.
func SortRFC(ids []UUID) {
	slices.SortFunc(ids, UUID.Compare)
}

// sqlServerByteOrder lists stored byte positions from most to least
// significant in SQL Server's uniqueidentifier comparison: bytes 10-15,
// then 8-9, 6-7, 4-5 and 0-3.
var sqlServerByteOrder = [16]int{10, 11, 12, 13, 14, 15, 8, 9, 6, 7, 4, 5, 0, 1, 2, 3}

// CompareNative orders two values the way SQL Server compares
// uniqueidentifier values.
func (s SQLGUID) CompareNative(other SQLGUID) int {
	for _, i := range sqlServerByteOrder {
		switch {
		case s[i] < other[i]:
			return -1
		case s[i] > other[i]:
			return 1
		}
	}
	return 0
}

// CompareSQLServer orders a and b the way SQL Server sorts them in a
// uniqueidentifier column. The last six bytes of the canonical text are
// the most significant, so version 1 values with random nodes do not sort
// by time under it.
func CompareSQLServer(a, b UUID) int {
	return ToSQLOrder(a).CompareNative(ToSQLOrder(b))
}

// SortSQLServer sorts ids in place by CompareSQLServer.
func SortSQLServer(ids []UUID) {
	slices.SortFunc(ids, CompareSQLServer)
}

// SQLComparer orders UUIDs by CompareSQL. The zero value is ready to use.
type SQLComparer struct{}

// Compare is CompareSQL.
func (SQLComparer) Compare(a, b UUID) int { return CompareSQL(a, b) }

// Less reports whether a sorts before b.
func (SQLComparer) Less(a, b UUID) bool { return CompareSQL(a, b) < 0 }
