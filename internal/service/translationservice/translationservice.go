package translationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/metrics"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, record *domain.TranslationRecord) (*domain.TranslationRecord, error)
	ListByUserID(ctx context.Context, userID, offset, limit int) ([]domain.TranslationRecord, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int, amount int64) (int64, error)
}

type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang, model string) (string, error)
}

type Service struct {
	repo       Repo
	ledger     Ledger
	translator Translator
	fee        int64
}

func New(repo Repo, ledger Ledger, translator Translator, fee int64) *Service {
	return &Service{
		repo:       repo,
		ledger:     ledger,
		translator: translator,
		fee:        fee,
	}
}

// Process charges the fee, runs the translation and stores the outcome.
//
// Nothing is written when the input is invalid or the wallet cannot cover
// the fee. Once the fee is debited a record is always attempted, also when
// the engine fails; in that case the stored record is returned together with
// an error wrapping domain.ErrTranslationEngine. A failed write after the
// debit is reported as domain.ErrChargedNotRecorded.
func (s *Service) Process(ctx context.Context, userID int, req domain.TranslationRequest) (*domain.TranslationRecord, error) {
	req, err := req.Normalize()
	if err != nil {
		metrics.RecordTranslation("invalid")
		return nil, err
	}

	if _, err := s.ledger.Debit(ctx, userID, s.fee); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			metrics.RecordTranslation("insufficient_funds")
		} else {
			metrics.RecordTranslation("error")
		}
		return nil, err
	}

	// The user has paid; finish regardless of the caller going away.
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	output, engineErr := s.translator.Translate(ctx, req.Text, req.SourceLang, req.TargetLang, req.Model)
	metrics.ObserveEngineDuration(time.Since(start).Seconds())
	if engineErr != nil {
		zap.L().Warn("translation engine failed", zap.Int("userID", userID), zap.String("model", req.Model), zap.Error(engineErr))
		output = ""
	}

	cost := s.fee
	record := &domain.TranslationRecord{
		UserID:     userID,
		InputText:  req.Text,
		OutputText: output,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Cost:       &cost,
	}
	if req.ExternalID != "" {
		externalID := req.ExternalID
		record.ExternalID = &externalID
	}

	stored, err := s.repo.Create(ctx, record)
	if err != nil {
		metrics.RecordTranslation("error")
		zap.L().Error("charged without record",
			zap.Int("userID", userID),
			zap.Int64("amount", s.fee),
			zap.String("externalID", req.ExternalID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrChargedNotRecorded, err)
	}

	if engineErr != nil {
		metrics.RecordTranslation("engine_error")
		return stored, fmt.Errorf("%w: %w", domain.ErrTranslationEngine, engineErr)
	}

	metrics.RecordTranslation("ok")
	zap.L().Info("translation processed", zap.Int("userID", userID), zap.Int("recordID", stored.ID))
	return stored, nil
}

func (s *Service) GetTranslations(ctx context.Context, userID, offset, limit int) ([]domain.TranslationRecord, error) {
	records, err := s.repo.ListByUserID(ctx, userID, offset, limit)
	if err != nil {
		zap.L().Error("failed to fetch translations", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return records, nil
}
