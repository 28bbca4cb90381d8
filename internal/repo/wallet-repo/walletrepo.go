package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetBalance returns 0 for a user without a wallet row and does not create one.
func (r *Repository) GetBalance(ctx context.Context, userID int) (int64, error) {
	query := `
		SELECT balance
		FROM wallets
		WHERE user_id = $1
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		zap.L().Error("failed to get wallet balance", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) EnsureWallet(ctx context.Context, userID int) error {
	query := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to create wallet", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

// Increase creates the wallet if needed and adds amount in a single statement.
func (r *Repository) Increase(ctx context.Context, userID int, amount int64) (int64, error) {
	query := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = wallets.balance + EXCLUDED.balance
		RETURNING balance
	`
	var balance int64
	if err := r.db.QueryRow(ctx, query, userID, amount).Scan(&balance); err != nil {
		zap.L().Error("failed to increase wallet balance", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Decrease subtracts amount only when the balance covers it. The row lock
// taken by the UPDATE serialises concurrent callers, and the predicate is
// re-evaluated against the committed row, so the balance cannot go negative.
func (r *Repository) Decrease(ctx context.Context, userID int, amount int64) (int64, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $2
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientFunds
		}
		zap.L().Error("failed to decrease wallet balance", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}
