package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gpng/quip-bot/models"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*QuipStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open("postgres", db)
	require.NoError(t, err)

	return &QuipStore{db: gdb, table: "quips"}, mock
}

func TestQuipStorePut(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "quips" ("id","message") VALUES ($1,$2)`)).
		WithArgs("abc", "hello").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("abc"))
	mock.ExpectCommit()

	require.NoError(t, store.Put(context.Background(), models.Quip{ID: "abc", Text: "hello"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuipStoreScan(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "quips"`) + `.*ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "message"}).
			AddRow("a1", "first").
			AddRow("b2", "second"))

	quips, err := store.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Quip{{ID: "a1", Text: "first"}, {ID: "b2", Text: "second"}}, quips)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuipStoreScanError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "quips"`)).
		WillReturnError(errors.New("connection reset"))

	_, err := store.Scan(context.Background())
	assert.EqualError(t, err, "scan quips: connection reset")
}

func TestQuipStoreDelete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "quips"\s+WHERE \(id = \$1\)`).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Delete(context.Background(), "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
