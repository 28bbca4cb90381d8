package walletservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/metrics"
	"github.com/GlebRadaev/translator/internal/pg"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	EnsureWallet(ctx context.Context, userID int) error
	Increase(ctx context.Context, userID int, amount int64) (int64, error)
	Decrease(ctx context.Context, userID int, amount int64) (int64, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error)
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// GetBalance reports zero for a user that has no wallet yet.
func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	balance, err := s.walletRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Credit adds amount to the wallet and appends the matching ledger entry in
// one database transaction. Only TOPUP credits exist; an empty kind means
// TOPUP.
func (s *Service) Credit(ctx context.Context, userID int, amount int64, kind domain.TransactionKind) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if kind == "" {
		kind = domain.TransactionKindTopUp
	}
	if kind != domain.TransactionKindTopUp {
		return 0, domain.ErrInvalidKind
	}

	var balance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.walletRepo.Increase(ctx, userID, amount)
		if err != nil {
			return err
		}
		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID: userID,
			Amount: amount,
			Kind:   kind,
		})
		return err
	})
	if err != nil {
		metrics.RecordLedgerOperation(string(kind), "error", amount)
		zap.L().Error("failed to credit wallet", zap.Int("userID", userID), zap.Int64("amount", amount), zap.Error(err))
		return 0, err
	}

	metrics.RecordLedgerOperation(string(kind), "ok", amount)
	zap.L().Info("wallet credited", zap.Int("userID", userID), zap.Int64("amount", amount), zap.Int64("balance", balance))
	return balance, nil
}

// Debit withdraws amount only if the balance covers it. The wallet row lock
// taken by the conditional update serialises concurrent debits of one user.
func (s *Service) Debit(ctx context.Context, userID int, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	var balance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.walletRepo.EnsureWallet(ctx, userID); err != nil {
			return err
		}
		var err error
		balance, err = s.walletRepo.Decrease(ctx, userID, amount)
		if err != nil {
			return err
		}
		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID: userID,
			Amount: amount,
			Kind:   domain.TransactionKindDebit,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			metrics.RecordLedgerOperation(string(domain.TransactionKindDebit), "insufficient_funds", amount)
			zap.L().Info("insufficient funds", zap.Int("userID", userID), zap.Int64("amount", amount))
			return 0, err
		}
		metrics.RecordLedgerOperation(string(domain.TransactionKindDebit), "error", amount)
		zap.L().Error("failed to debit wallet", zap.Int("userID", userID), zap.Int64("amount", amount), zap.Error(err))
		return 0, err
	}

	metrics.RecordLedgerOperation(string(domain.TransactionKindDebit), "ok", amount)
	return balance, nil
}

// CanAfford is advisory only; Debit is the authoritative check.
func (s *Service) CanAfford(ctx context.Context, userID int, amount int64) (bool, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUserID(ctx, userID, offset, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
