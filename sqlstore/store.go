// Package sqlstore persists guid keys in SQL Server and MySQL tables and
// reads them back in the order the engine sorts them.
package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/Lzww0608/guid"
)

// DefaultTable is used when no table name is given.
const DefaultTable = "guid_keys"

// ErrInvalidTable is returned for table names that are not plain identifiers.
var ErrInvalidTable = errors.New("sqlstore: invalid table name")

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,127}$`)

// Store is a key table in one database.
//
// Columns: id (uniqueidentifier or BINARY(16), primary key), label, and
// created_at set by the server.
type Store struct {
	db      *sql.DB
	dialect Dialect
	table   string
	stmts   statements
}

type statements struct {
	create string
	insert string
	keys   string
	count  string
}

// New wraps an open database handle. An empty table selects DefaultTable.
func New(db *sql.DB, dialect Dialect, table string) (*Store, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	stmts, err := buildStatements(dialect, table)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, dialect: dialect, table: table, stmts: stmts}, nil
}

func buildStatements(d Dialect, table string) (statements, error) {
	switch d {
	case SQLServer:
		return statements{
			create: fmt.Sprintf(`IF OBJECT_ID(N'%[1]s', N'U') IS NULL
CREATE TABLE %[1]s (
	id UNIQUEIDENTIFIER NOT NULL PRIMARY KEY CLUSTERED,
	label NVARCHAR(128) NOT NULL,
	created_at DATETIME2 NOT NULL DEFAULT SYSUTCDATETIME()
)`, table),
			insert: fmt.Sprintf("INSERT INTO %s (id, label) VALUES (@p1, @p2)", table),
			keys:   fmt.Sprintf("SELECT TOP (@p1) id FROM %s ORDER BY id", table),
			count:  fmt.Sprintf("SELECT COUNT_BIG(*) FROM %s", table),
		}, nil
	case MySQL:
		return statements{
			create: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BINARY(16) NOT NULL PRIMARY KEY,
	label VARCHAR(128) NOT NULL,
	created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
)`, table),
			insert: fmt.Sprintf("INSERT INTO %s (id, label) VALUES (?, ?)", table),
			keys:   fmt.Sprintf("SELECT id FROM %s ORDER BY id LIMIT ?", table),
			count:  fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
		}, nil
	default:
		return statements{}, fmt.Errorf("sqlstore: unsupported dialect %v", d)
	}
}

// Dialect returns the SQL flavour the store was opened with.
func (s *Store) Dialect() Dialect { return s.dialect }

// Table returns the key table name.
func (s *Store) Table() string { return s.table }

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// column converts a key to the dialect's column value.
func (s *Store) column(u guid.UUID) driver.Valuer {
	if s.dialect == MySQL {
		return MySQLKey(u)
	}
	return SQLServerKey(u)
}

// EnsureTable creates the key table if it does not exist.
func (s *Store) EnsureTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.stmts.create); err != nil {
		return fmt.Errorf("sqlstore: create table %s: %w", s.table, err)
	}
	log.Debug().Str("table", s.table).Str("dialect", s.dialect.String()).Msg("table ready")
	return nil
}

// Insert stores one key.
func (s *Store) Insert(ctx context.Context, key guid.UUID, label string) error {
	if _, err := s.db.ExecContext(ctx, s.stmts.insert, s.column(key), label); err != nil {
		return fmt.Errorf("sqlstore: insert %s: %w", key, err)
	}
	return nil
}

// InsertBatch stores keys in a single transaction. progress, when non-nil,
// is called after each row with the number of rows written so far. Nothing
// is committed if any insert fails.
func (s *Store) InsertBatch(ctx context.Context, keys []guid.UUID, label string, progress func(int)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.stmts.insert)
	if err != nil {
		return fmt.Errorf("sqlstore: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, key := range keys {
		if _, err := stmt.ExecContext(ctx, s.column(key), label); err != nil {
			return fmt.Errorf("sqlstore: insert %s: %w", key, err)
		}
		if progress != nil {
			progress(i + 1)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlstore: commit: %w", err)
	}
	log.Debug().Str("table", s.table).Int("rows", len(keys)).Msg("batch committed")
	return nil
}

// Keys returns up to limit keys in the order the engine sorts the id
// column. For SQL Server that is guid.CompareSQLServer; for MySQL it is
// byte order of the ToMySQLOrder layout.
func (s *Store) Keys(ctx context.Context, limit int) ([]guid.UUID, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", guid.ErrInvalidArgument)
	}
	rows, err := s.db.QueryContext(ctx, s.stmts.keys, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: query keys: %w", err)
	}
	defer rows.Close()

	keys := make([]guid.UUID, 0, limit)
	for rows.Next() {
		var u guid.UUID
		switch s.dialect {
		case MySQL:
			var k MySQLKey
			if err := rows.Scan(&k); err != nil {
				return nil, err
			}
			u = k.UUID()
		default:
			var k SQLServerKey
			if err := rows.Scan(&k); err != nil {
				return nil, err
			}
			u = k.UUID()
		}
		keys = append(keys, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: read keys: %w", err)
	}
	return keys, nil
}

// Count returns the number of rows in the key table.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, s.stmts.count).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlstore: count: %w", err)
	}
	return n, nil
}
