package cookies

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE cookies (
    host       TEXT    NOT NULL,
    name       TEXT    NOT NULL,
    path       TEXT    NOT NULL DEFAULT '/',
    domain     TEXT    NOT NULL DEFAULT '',
    value      BLOB    NOT NULL,
    expires_at INTEGER NOT NULL DEFAULT 0,
    secure     INTEGER NOT NULL DEFAULT 0,
    http_only  INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (host, name, path)
);`)
	require.NoError(t, err)
	return db
}

func TestUpsertAndList(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, r.Upsert(ctx, Cookie{Host: "api.local", Name: "token", Value: []byte("abc"), Expires: exp, HTTPOnly: true}))
	require.NoError(t, r.Upsert(ctx, Cookie{Host: "other.local", Name: "token", Value: []byte("zzz")}))

	got, err := r.List(ctx, "api.local")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "token", got[0].Name)
	assert.Equal(t, "/", got[0].Path)
	assert.Equal(t, []byte("abc"), got[0].Value)
	assert.True(t, got[0].Expires.Equal(exp))
	assert.True(t, got[0].HTTPOnly)
	assert.False(t, got[0].Secure)
}

func TestUpsert_Overwrites(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, Cookie{Host: "h", Name: "token", Path: "/", Value: []byte("old")}))
	require.NoError(t, r.Upsert(ctx, Cookie{Host: "h", Name: "token", Path: "/", Value: []byte("new")}))

	got, err := r.List(ctx, "h")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []byte("new"), got[0].Value)
	assert.True(t, got[0].Expires.IsZero(), "session cookie keeps zero expiry")
}

func TestDeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, Cookie{Host: "h", Name: "a", Value: []byte("1")}))
	require.NoError(t, r.Upsert(ctx, Cookie{Host: "h", Name: "b", Value: []byte("2")}))

	require.NoError(t, r.Delete(ctx, "h", "a", ""))
	got, err := r.List(ctx, "h")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Name)

	require.NoError(t, r.Clear(ctx, "h"))
	got, err = r.List(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_DBErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM cookies`).WithArgs("h").WillReturnError(errors.New("driver down"))

	_, err = NewSQLiteRepository(db).List(context.Background(), "h")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list cookies")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_DBErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO cookies`).WillReturnError(errors.New("read-only"))

	err = NewSQLiteRepository(db).Upsert(context.Background(), Cookie{Host: "h", Name: "token"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to upsert cookie[token]")
}

func TestBatch_CommitsAll(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	err := r.Batch(ctx, func(tx Repository) error {
		if err := tx.Upsert(ctx, Cookie{Host: "h", Name: "a", Value: []byte("1")}); err != nil {
			return err
		}
		return tx.Upsert(ctx, Cookie{Host: "h", Name: "b", Value: []byte("2")})
	})
	require.NoError(t, err)

	got, err := r.List(ctx, "h")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBatch_RollsBackOnError(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := r.Batch(ctx, func(tx Repository) error {
		require.NoError(t, tx.Upsert(ctx, Cookie{Host: "h", Name: "a", Value: []byte("1")}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := r.List(ctx, "h")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBatch_DriverFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO cookies`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = NewSQLiteRepository(db).Batch(context.Background(), func(tx Repository) error {
		return tx.Upsert(context.Background(), Cookie{Host: "h", Name: "token"})
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}
