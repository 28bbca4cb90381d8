package historyservice

import (
	"context"
	"sort"

	"github.com/GlebRadaev/translator/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TranslationRepo interface {
	ListByUserID(ctx context.Context, userID, offset, limit int) ([]domain.TranslationRecord, error)
}

type TransactionRepo interface {
	ListByUserID(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error)
}

type Service struct {
	translationRepo TranslationRepo
	transactionRepo TransactionRepo
}

func New(translationRepo TranslationRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		translationRepo: translationRepo,
		transactionRepo: transactionRepo,
	}
}

// GetHistory merges the latest translations and ledger entries of a user,
// newest first, and keeps the first limit items. Each source contributes at
// most limit rows. Items with equal timestamps keep translations ahead of
// transactions, so which of them survive the cut at limit follows that order
// rather than any database ordering.
func (s *Service) GetHistory(ctx context.Context, userID, limit int) ([]domain.HistoryItem, error) {
	_, limit = domain.ClampPage(0, limit)

	var (
		translations []domain.TranslationRecord
		transactions []domain.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		translations, err = s.translationRepo.ListByUserID(gctx, userID, 0, limit)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.ListByUserID(gctx, userID, 0, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to fetch history", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	items := make([]domain.HistoryItem, 0, len(translations)+len(transactions))
	for i := range translations {
		items = append(items, domain.HistoryItem{
			Kind:        domain.HistoryKindTranslation,
			Timestamp:   translations[i].CreatedAt,
			Translation: &translations[i],
		})
	}
	for i := range transactions {
		items = append(items, domain.HistoryItem{
			Kind:        domain.HistoryKindTransaction,
			Timestamp:   transactions[i].CreatedAt,
			Transaction: &transactions[i],
		})
	}

	// stable: on equal timestamps translations stay ahead of transactions
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
