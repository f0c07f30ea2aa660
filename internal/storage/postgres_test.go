package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-care-guide/internal/domain"
)

func setupMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	store, err := NewPostgresStore(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return store, mock
}

func TestPostgresStore_Get(t *testing.T) {
	store, mock := setupMockStore(t)

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte("zh"))
	mock.ExpectQuery(`SELECT value FROM kv_state WHERE key = \$1`).
		WithArgs(LanguageKey).
		WillReturnRows(rows)

	got, err := store.Get(context.Background(), LanguageKey)
	require.NoError(t, err)
	assert.Equal(t, "zh", string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMissing(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv_state`).
		WithArgs(StateKey).
		WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), StateKey)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv_state`).
		WithArgs(StateKey).
		WillReturnError(errors.New("connection reset"))

	_, err := store.Get(context.Background(), StateKey)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgresStore_SetUpserts(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(`INSERT INTO kv_state .* ON CONFLICT \(key\) DO UPDATE SET`).
		WithArgs(StateKey, []byte(`{}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), StateKey, []byte(`{}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(`DELETE FROM kv_state WHERE key = \$1`).
		WithArgs(LanguageKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Delete(context.Background(), LanguageKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresStore_Errors(t *testing.T) {
	_, err := NewPostgresStore(context.Background(), nil)
	assert.Error(t, err)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("refused"))
	_, err = NewPostgresStore(context.Background(), db)
	assert.Error(t, err)

	_, err = NewPostgresStoreFromURL(context.Background(), "", 0)
	assert.Error(t, err)
}
