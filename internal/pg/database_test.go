package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestDBUsesPoolWithoutTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := NewMockDatabase(ctrl)
	db := New(pool)
	ctx := context.Background()

	pool.EXPECT().Exec(ctx, "UPDATE wallets SET balance = $1", int64(0)).
		Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	tag, err := db.Exec(ctx, "UPDATE wallets SET balance = $1", int64(0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.RowsAffected())
}

func TestDBUsesTransactionFromContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: any query reaching the pool fails the test
	pool := NewMockDatabase(ctrl)
	db := New(pool)

	mockTx, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockTx.Close)

	mockTx.ExpectBegin()
	mockTx.ExpectExec("UPDATE wallets").WithArgs(int64(0)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mockTx.Begin(context.Background())
	require.NoError(t, err)
	ctx := context.WithValue(context.Background(), txKey{}, tx)

	_, err = db.Exec(ctx, "UPDATE wallets SET balance = $1", int64(0))
	require.NoError(t, err)
	assert.NoError(t, mockTx.ExpectationsWereMet())
}
