package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/translator/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO transactions (user_id, amount, kind) VALUES ($1, $2, $3) RETURNING id, created_at`)

	t.Run("Successfully creates transaction", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, int64(20), "TOPUP").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

		result, err := repo.Create(context.Background(), &domain.Transaction{
			UserID: 1,
			Amount: 20,
			Kind:   domain.TransactionKindTopUp,
		})

		require.NoError(t, err)
		assert.Equal(t, &domain.Transaction{
			ID:        7,
			UserID:    1,
			Amount:    20,
			Kind:      domain.TransactionKindTopUp,
			CreatedAt: createdAt,
		}, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, int64(1), "DEBIT").
			WillReturnError(errors.New("database error"))

		result, err := repo.Create(context.Background(), &domain.Transaction{
			UserID: 1,
			Amount: 1,
			Kind:   domain.TransactionKindDebit,
		})

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	query := regexp.QuoteMeta(`
		SELECT id, user_id, amount, kind, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`)

	tests := []struct {
		name      string
		offset    int
		limit     int
		mockSetup func()
		expectErr bool
		result    []domain.Transaction
	}{
		{
			name:   "Returns rows newest first",
			offset: 0,
			limit:  10,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, 10, 0).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "amount", "kind", "created_at"}).
						AddRow(2, 1, int64(1), "DEBIT", now).
						AddRow(1, 1, int64(20), "TOPUP", now.Add(-time.Minute)))
			},
			result: []domain.Transaction{
				{ID: 2, UserID: 1, Amount: 1, Kind: domain.TransactionKindDebit, CreatedAt: now},
				{ID: 1, UserID: 1, Amount: 20, Kind: domain.TransactionKindTopUp, CreatedAt: now.Add(-time.Minute)},
			},
		},
		{
			name:   "Clamps limit and offset",
			offset: -5,
			limit:  1000,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, domain.MaxPageLimit, 0).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "amount", "kind", "created_at"}))
			},
			result: nil,
		},
		{
			name:   "Database error",
			offset: 0,
			limit:  10,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, 10, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByUserID(context.Background(), 1, tt.offset, tt.limit)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
