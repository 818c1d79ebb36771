package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/zeebo/assert"

	"github.com/Lzww0608/guid"
)

func newMockStore(t *testing.T, d Dialect) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := New(db, d, "")
	assert.NoError(t, err)
	return s, mock
}

func TestNew_Table(t *testing.T) {
	s, _ := newMockStore(t, SQLServer)
	assert.Equal(t, s.Table(), DefaultTable)
	assert.Equal(t, s.Dialect(), SQLServer)

	for _, bad := range []string{"keys; DROP TABLE x", "1keys", "a-b"} {
		_, err := New(nil, MySQL, bad)
		assert.That(t, errors.Is(err, ErrInvalidTable))
	}

	_, err := New(nil, Dialect(7), "keys")
	assert.Error(t, err)
}

func TestStatements(t *testing.T) {
	ms, err := buildStatements(SQLServer, "k")
	assert.NoError(t, err)
	assert.Equal(t, ms.insert, "INSERT INTO k (id, label) VALUES (@p1, @p2)")
	assert.Equal(t, ms.keys, "SELECT TOP (@p1) id FROM k ORDER BY id")

	my, err := buildStatements(MySQL, "k")
	assert.NoError(t, err)
	assert.Equal(t, my.insert, "INSERT INTO k (id, label) VALUES (?, ?)")
	assert.Equal(t, my.keys, "SELECT id FROM k ORDER BY id LIMIT ?")
}

func TestEnsureTable(t *testing.T) {
	s, mock := newMockStore(t, MySQL)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS guid_keys").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.EnsureTable(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_SQLServerWritesStoredOrder(t *testing.T) {
	s, mock := newMockStore(t, SQLServer)
	stored := guid.ToSQLOrder(key)
	mock.ExpectExec(regexp.QuoteMeta(s.stmts.insert)).
		WithArgs(stored.Bytes(), "a").
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, s.Insert(context.Background(), key, "a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_MySQLWritesSwappedTime(t *testing.T) {
	s, mock := newMockStore(t, MySQL)
	b := ToMySQLOrder(key)
	mock.ExpectExec(regexp.QuoteMeta(s.stmts.insert)).
		WithArgs(b[:], "a").
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, s.Insert(context.Background(), key, "a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatch_Commits(t *testing.T) {
	s, mock := newMockStore(t, SQLServer)
	keys := []guid.UUID{
		guid.NewSHA1String(guid.NamespaceDNS, "a"),
		guid.NewSHA1String(guid.NamespaceDNS, "b"),
		guid.NewSHA1String(guid.NamespaceDNS, "c"),
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta(s.stmts.insert))
	for _, k := range keys {
		prep.ExpectExec().
			WithArgs(guid.ToSQLOrder(k).Bytes(), "batch").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	var seen []int
	err := s.InsertBatch(context.Background(), keys, "batch", func(n int) { seen = append(seen, n) })
	assert.NoError(t, err)
	assert.Equal(t, seen, []int{1, 2, 3})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatch_RollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t, MySQL)
	keys := []guid.UUID{key, key}
	b := ToMySQLOrder(key)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta(s.stmts.insert))
	prep.ExpectExec().WithArgs(b[:], "dup").WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs(b[:], "dup").WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	err := s.InsertBatch(context.Background(), keys, "dup", nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeys(t *testing.T) {
	s, mock := newMockStore(t, SQLServer)
	a := guid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	b := guid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

	rows := sqlmock.NewRows([]string{"id"}).
		AddRow(guid.ToSQLOrder(a).Bytes()).
		AddRow(guid.ToSQLOrder(b).Bytes())
	mock.ExpectQuery(regexp.QuoteMeta(s.stmts.keys)).WithArgs(2).WillReturnRows(rows)

	got, err := s.Keys(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, got, []guid.UUID{a, b})
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = s.Keys(context.Background(), 0)
	assert.That(t, errors.Is(err, guid.ErrInvalidArgument))
}

func TestKeys_MySQL(t *testing.T) {
	s, mock := newMockStore(t, MySQL)
	b := ToMySQLOrder(key)
	rows := sqlmock.NewRows([]string{"id"}).AddRow(b[:])
	mock.ExpectQuery(regexp.QuoteMeta(s.stmts.keys)).WithArgs(10).WillReturnRows(rows)

	got, err := s.Keys(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, got, []guid.UUID{key})
}

func TestCount(t *testing.T) {
	s, mock := newMockStore(t, SQLServer)
	mock.ExpectQuery(regexp.QuoteMeta(s.stmts.count)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(int64(3)))

	n, err := s.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, n, int64(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeys_SQLServerOrderIsNative(t *testing.T) {
	s, mock := newMockStore(t, SQLServer)
	// Rows as SQL Server returns them for ORDER BY id: the node bytes lead.
	first := guid.MustParse("ffffffff-ffff-ffff-ffff-000000000000")
	second := guid.MustParse("00000000-0000-0000-0000-000000000001")
	rows := sqlmock.NewRows([]string{"id"}).
		AddRow(guid.ToSQLOrder(first).Bytes()).
		AddRow(guid.ToSQLOrder(second).Bytes())
	mock.ExpectQuery(regexp.QuoteMeta(s.stmts.keys)).WithArgs(2).WillReturnRows(rows)

	got, err := s.Keys(context.Background(), 2)
	assert.NoError(t, err)
	assert.That(t, slices.IsSortedFunc(got, guid.CompareSQLServer))
	assert.That(t, !slices.IsSortedFunc(got, guid.CompareSQL))
	assert.NoError(t, mock.ExpectationsWereMet())
}
