package repo

import (
	"testing"

	transactionrepo "github.com/GlebRadaev/translator/internal/repo/transaction-repo"
	translationrepo "github.com/GlebRadaev/translator/internal/repo/translation-repo"
	userrepo "github.com/GlebRadaev/translator/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/translator/internal/repo/wallet-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &translationrepo.Repository{}, repo.TranslationRepo)

	assert.NoError(t, mock.ExpectationsWereMet())
}
