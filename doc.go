// Package guid generates RFC 4122 identifiers that behave well as database
// keys: time-based (version 1) sequential UUIDs, name-based UUIDs
// (version 3 with MD5, version 5 with SHA-1), and the byte-order
// conversion SQL Server needs to store and sort them as uniqueidentifier.
//
// Byte orders:
//
// A UUID holds its bytes in RFC 4122 network order, which is also the order
// of its canonical text. SQL Server and .NET keep the first three fields
// little-endian; that layout is the separate type SQLGUID. The two are
// never converted implicitly:
//
//	id := guid.Must(guid.NewSequential())
//	stored := guid.ToSQLOrder(id)   // what goes into a uniqueidentifier
//	back := guid.FromSQLOrder(stored)
//
// Both print the same canonical text; SQLGUID.Hex shows the stored bytes.
//
// Name-based identifiers:
//
//	id := guid.NewSHA1String(guid.NamespaceDNS, "www.example.com")
//	// 2ed6657d-e927-568b-95e1-2665a8aea6a2
//
// The same namespace and name always give the same UUID.
//
// Sequential identifiers:
//
//	gen := guid.NewGenerator()
//	id, err := gen.New()
//
// A Generator embeds a 60-bit count of 100ns ticks since 1582-10-15, a
// clock sequence, and a random multicast node. Its ClockState can be shared
// between generators and its Clock can be replaced in tests.
//
// Ordering:
//
// UUID.Compare orders by RFC 4122 bytes. CompareSQL orders by the bytes of
// the SQL Server layout. CompareSQLServer reproduces SQL Server's own
// ORDER BY on a uniqueidentifier column, which compares the last six bytes
// first.
//
// Fingerprints:
//
// FingerprintOf feeds a caller-supplied serialization of any value into the
// SHA-1 builder. The package serial provides deterministic encoders.
//
// Thread Safety:
//
// Everything except Generator is a pure function of its arguments. A
// Generator serializes updates to its ClockState with a mutex and may be
// shared between goroutines.
package guid
