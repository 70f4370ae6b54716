package storage_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-ai/backend/internal/storage"
)

func setupSQLiteSubstrate(t *testing.T) (*storage.SQLiteSubstrate, *sql.DB, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	return storage.NewSQLiteSubstrate(db), db, mockDB
}

func TestSQLiteSubstrate_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		sub, db, mockDB := setupSQLiteSubstrate(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store (key, value, updated_at)")).
			WithArgs("visitor:1:user", `{"id":"1"}`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, sub.Set(ctx, "visitor:1:user", `{"id":"1"}`))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Failure - DB error", func(t *testing.T) {
		sub, db, mockDB := setupSQLiteSubstrate(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store")).WillReturnError(errors.New("disk full"))

		err := sub.Set(ctx, "k", "v")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSQLiteSubstrate_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = ?")

	t.Run("Success - Found", func(t *testing.T) {
		sub, db, mockDB := setupSQLiteSubstrate(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectQuery(query).WithArgs("k").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("v"))

		v, found, err := sub.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "v", v)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Success - Not found", func(t *testing.T) {
		sub, db, mockDB := setupSQLiteSubstrate(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectQuery(query).WithArgs("k").WillReturnError(sql.ErrNoRows)

		_, found, err := sub.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Failure - DB error", func(t *testing.T) {
		sub, db, mockDB := setupSQLiteSubstrate(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectQuery(query).WithArgs("k").WillReturnError(errors.New("locked"))

		_, _, err := sub.Get(ctx, "k")
		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSQLiteSubstrate_Prefix(t *testing.T) {
	ctx := context.Background()

	t.Run("DeletePrefix counts characters", func(t *testing.T) {
		sub, db, mockDB := setupSQLiteSubstrate(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE substr(key, 1, ?) = ?")).
			WithArgs(9, "visitor:ş").
			WillReturnResult(sqlmock.NewResult(0, 3))

		require.NoError(t, sub.DeletePrefix(ctx, "visitor:ş"))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("KeysWithPrefix", func(t *testing.T) {
		sub, db, mockDB := setupSQLiteSubstrate(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectQuery(regexp.QuoteMeta("SELECT key FROM kv_store WHERE substr(key, 1, ?) = ?")).
			WithArgs(10, "visitor:1:").
			WillReturnRows(sqlmock.NewRows([]string{"key"}).
				AddRow("visitor:1:chat_history").
				AddRow("visitor:1:user"))

		keys, err := sub.KeysWithPrefix(ctx, "visitor:1:")
		require.NoError(t, err)
		assert.Equal(t, []string{"visitor:1:chat_history", "visitor:1:user"}, keys)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Store keys are stripped of the namespace", func(t *testing.T) {
		sub, db, mockDB := setupSQLiteSubstrate(t)
		defer func() { _ = db.Close() }()

		mockDB.ExpectQuery(regexp.QuoteMeta("SELECT key FROM kv_store")).
			WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("visitor:1:user"))

		s := storage.NewRealBackedStore("durable", sub, "visitor:1")
		assert.Equal(t, []string{"user"}, s.Keys(ctx))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
