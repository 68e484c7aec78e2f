package main

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/juegosdunz-vr/internal/database"
	"github.com/01moynul/juegosdunz-vr/internal/store"
)

// mockOpener returns a storeOpener backed by sqlmock. The provider is the
// closer, so the command's deferred Close must reach the pool.
func mockOpener(t *testing.T) (storeOpener, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	provider := database.NewProviderWithOpener(func(ctx context.Context) (*sql.DB, error) {
		return db, nil
	})
	return func() (*store.Store, io.Closer) {
		return store.New(provider, zerolog.Nop()), provider
	}, mock
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "juegosdunz-vr dev")
}

func TestDiscountCommand_RequiresFlags(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"discount", "--game", "7"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "percent")
}

func TestDiscountCommand_Success(t *testing.T) {
	open, mock := mockOpener(t)
	mock.ExpectExec(`CALL AplicarDescuento\(\?, \?\)`).
		WithArgs(int64(7), int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectClose()

	root := newRootCmdWith(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"discount", "--game", "7", "--percent", "20"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Applied 20% discount to game 7")
}

func TestDiscountCommand_FailureReturnsError(t *testing.T) {
	open, mock := mockOpener(t)
	mock.ExpectExec(`CALL AplicarDescuento`).
		WithArgs(int64(999), int64(20)).
		WillReturnError(&mysql.MySQLError{Number: 1644, Message: "Juego no encontrado"})
	mock.ExpectClose()

	root := newRootCmdWith(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"discount", "--game", "999", "--percent", "20"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraint failure")
}
