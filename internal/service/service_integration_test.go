//go:build integration

package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/translator/internal/config"
	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/pg"
	"github.com/GlebRadaev/translator/internal/repo"
	"github.com/GlebRadaev/translator/internal/service/taskservice"
	"github.com/GlebRadaev/translator/pkg/translator"
)

func setupServices(t *testing.T) (*Services, *repo.Repositories) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("translator_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{"test": "translator-service"}),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pg.RunMigrations(pool))

	cfg := &config.Config{
		JWTSecret:      "secret",
		TokenTTL:       time.Hour,
		TranslationFee: 1,
		TaskQueue:      "translation_tasks",
	}
	repos := repo.New(pg.New(pool))
	ctrl := gomock.NewController(t)
	services := New(cfg, repos, pg.NewTXManager(pool), translator.NewEchoEngine(), taskservice.NewMockPublisher(ctrl))
	return services, repos
}

func TestConcurrentTranslationsNeverOverdraw(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	user, err := services.AuthService.Register(ctx, "concurrent@example.com", "s3cretpass")
	require.NoError(t, err)

	balance, err := services.WalletService.Credit(ctx, user.ID, 5, domain.TransactionKindTopUp)
	require.NoError(t, err)
	require.Equal(t, int64(5), balance)

	const attempts = 12
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
		other        []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := services.TranslationService.Process(ctx, user.ID, domain.TranslationRequest{
				Text:       "Hello",
				TargetLang: "de",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInsufficientFunds):
				insufficient++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, other)
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, attempts-5, insufficient)

	balance, err = services.WalletService.GetBalance(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	transactions, err := services.WalletService.GetTransactions(ctx, user.ID, 0, domain.MaxPageLimit)
	require.NoError(t, err)
	var topups, debits int64
	for _, txn := range transactions {
		switch txn.Kind {
		case domain.TransactionKindTopUp:
			topups += txn.Amount
		case domain.TransactionKindDebit:
			debits += txn.Amount
		}
	}
	assert.Equal(t, balance, topups-debits)
	assert.Equal(t, int64(5), debits)

	records, err := services.TranslationService.GetTranslations(ctx, user.ID, 0, domain.MaxPageLimit)
	require.NoError(t, err)
	assert.Len(t, records, 5)
	for _, r := range records {
		require.NotNil(t, r.Cost)
		assert.Equal(t, int64(1), *r.Cost)
		assert.Equal(t, "Hello", r.OutputText)
		assert.Equal(t, domain.DefaultSourceLang, r.SourceLang)
	}
}

func TestTaskStatusFollowsStoredRecord(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	user, err := services.AuthService.Register(ctx, "tasks@example.com", "s3cretpass")
	require.NoError(t, err)
	_, err = services.WalletService.Credit(ctx, user.ID, 2, domain.TransactionKindTopUp)
	require.NoError(t, err)

	status, err := services.TaskService.GetStatus(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, status.Status)

	_, err = services.TranslationService.Process(ctx, user.ID, domain.TranslationRequest{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "de",
		ExternalID: "task-1",
	})
	require.NoError(t, err)

	status, err = services.TaskService.GetStatus(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, status.Status)
	require.NotNil(t, status.OutputText)
	assert.Equal(t, "Hello", *status.OutputText)
	require.NotNil(t, status.Cost)
	assert.Equal(t, int64(1), *status.Cost)

	history, err := services.HistoryService.GetHistory(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, domain.HistoryKindTranslation, history[0].Kind)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Timestamp.After(history[i-1].Timestamp))
	}
}

func TestEmptyWalletCannotBeCharged(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	user, err := services.AuthService.Register(ctx, "empty@example.com", "s3cretpass")
	require.NoError(t, err)

	record, err := services.TranslationService.Process(ctx, user.ID, domain.TranslationRequest{Text: "Hello", TargetLang: "de"})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Nil(t, record)

	balance, err := services.WalletService.GetBalance(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	transactions, err := services.WalletService.GetTransactions(ctx, user.ID, 0, domain.MaxPageLimit)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	records, err := services.TranslationService.GetTranslations(ctx, user.ID, 0, domain.MaxPageLimit)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInvalidInputIsNotCharged(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	user, err := services.AuthService.Register(ctx, "invalid@example.com", "s3cretpass")
	require.NoError(t, err)
	_, err = services.WalletService.Credit(ctx, user.ID, 3, domain.TransactionKindTopUp)
	require.NoError(t, err)

	for _, req := range []domain.TranslationRequest{
		{Text: "hi\x00there", TargetLang: "de"},
		{Text: "hello", SourceLang: strings.Repeat("e", 17), TargetLang: "de"},
		{Text: "hello", TargetLang: "de", ExternalID: strings.Repeat("x", 65)},
	} {
		_, err := services.TranslationService.Process(ctx, user.ID, req)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	balance, err := services.WalletService.GetBalance(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), balance)
}

func TestLedgerAgainstPostgres(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	register := func(t *testing.T, email string) int {
		user, err := services.AuthService.Register(ctx, email, "s3cretpass")
		require.NoError(t, err)
		return user.ID
	}
	kinds := func(t *testing.T, userID int) []domain.TransactionKind {
		transactions, err := services.WalletService.GetTransactions(ctx, userID, 0, domain.MaxPageLimit)
		require.NoError(t, err)
		out := make([]domain.TransactionKind, 0, len(transactions))
		for _, txn := range transactions {
			out = append(out, txn.Kind)
		}
		return out
	}

	t.Run("credit on a fresh user", func(t *testing.T) {
		userID := register(t, "fresh@example.com")

		balance, err := services.WalletService.Credit(ctx, userID, 20, domain.TransactionKindTopUp)
		require.NoError(t, err)
		assert.Equal(t, int64(20), balance)

		transactions, err := services.WalletService.GetTransactions(ctx, userID, 0, domain.MaxPageLimit)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, domain.TransactionKindTopUp, transactions[0].Kind)
		assert.Equal(t, int64(20), transactions[0].Amount)
	})

	t.Run("debit above balance changes nothing", func(t *testing.T) {
		userID := register(t, "short@example.com")
		_, err := services.WalletService.Credit(ctx, userID, 5, domain.TransactionKindTopUp)
		require.NoError(t, err)

		_, err = services.WalletService.Debit(ctx, userID, 10)
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)

		balance, err := services.WalletService.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), balance)
		assert.Equal(t, []domain.TransactionKind{domain.TransactionKindTopUp}, kinds(t, userID))
	})

	t.Run("credit then debit restores the balance", func(t *testing.T) {
		userID := register(t, "roundtrip@example.com")
		_, err := services.WalletService.Credit(ctx, userID, 4, domain.TransactionKindTopUp)
		require.NoError(t, err)
		before, err := services.WalletService.GetBalance(ctx, userID)
		require.NoError(t, err)

		_, err = services.WalletService.Credit(ctx, userID, 7, domain.TransactionKindTopUp)
		require.NoError(t, err)
		after, err := services.WalletService.Debit(ctx, userID, 7)
		require.NoError(t, err)

		assert.Equal(t, before, after)
		// newest first
		assert.Equal(t, []domain.TransactionKind{
			domain.TransactionKindDebit,
			domain.TransactionKindTopUp,
			domain.TransactionKindTopUp,
		}, kinds(t, userID))
	})
}
