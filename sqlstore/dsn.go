package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	mssql "github.com/microsoft/go-mssqldb"
)

// Dialect selects the SQL flavour and column type used for keys.
type Dialect int

const (
	// SQLServer stores keys in a uniqueidentifier column.
	SQLServer Dialect = iota
	// MySQL stores keys in a BINARY(16) column in ToMySQLOrder layout.
	MySQL
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case SQLServer:
		return "sqlserver"
	case MySQL:
		return "mysql"
	default:
		return fmt.Sprintf("dialect-%d", int(d))
	}
}

var (
	// ErrEmptyDSN is returned when no connection string is given.
	ErrEmptyDSN = errors.New("sqlstore: empty dsn")

	// ErrInvalidDSN wraps parse failures from either driver.
	ErrInvalidDSN = errors.New("sqlstore: invalid dsn")
)

const mysqlScheme = "mysql://"

// ParseDSN detects the dialect of dsn and returns a normalized connection
// string for it. SQL Server DSNs use the sqlserver:// URL form. MySQL DSNs
// use the go-sql-driver form, optionally prefixed with mysql://; parseTime
// is always enabled.
func ParseDSN(dsn string) (Dialect, string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return 0, "", ErrEmptyDSN
	}

	if strings.HasPrefix(strings.ToLower(dsn), "sqlserver://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %w", ErrInvalidDSN, err)
		}
		if u.Host == "" {
			return 0, "", fmt.Errorf("%w: missing host", ErrInvalidDSN)
		}
		return SQLServer, u.String(), nil
	}

	cfg, err := mysql.ParseDSN(strings.TrimPrefix(dsn, mysqlScheme))
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrInvalidDSN, err)
	}
	cfg.ParseTime = true
	return MySQL, cfg.FormatDSN(), nil
}

// Open connects to the database named by dsn and returns a Store bound to
// table. The pool is tuned the same way for both dialects.
func Open(dsn, table string) (*Store, error) {
	dialect, normalized, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	switch dialect {
	case SQLServer:
		connector, err := mssql.NewConnector(normalized)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
		}
		db = sql.OpenDB(connector)
	case MySQL:
		cfg, err := mysql.ParseDSN(normalized)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
		}
		connector, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
		}
		db = sql.OpenDB(connector)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store, err := New(db, dialect, table)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
