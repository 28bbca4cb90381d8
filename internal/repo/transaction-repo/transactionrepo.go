package transactionrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, kind)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, txn.UserID, txn.Amount, string(txn.Kind)).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error) {
	offset, limit = domain.ClampPage(offset, limit)
	query := `
		SELECT id, user_id, amount, kind, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		var kind string
		if err := rows.Scan(&txn.ID, &txn.UserID, &txn.Amount, &kind, &txn.CreatedAt); err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txn.Kind = domain.TransactionKind(kind)
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate transactions", zap.Error(err))
		return nil, err
	}

	return transactions, nil
}
