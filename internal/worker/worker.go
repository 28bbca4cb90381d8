package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GlebRadaev/translator/internal/config"
	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/metrics"
	"github.com/GlebRadaev/translator/pkg/mq"
	"go.uber.org/zap"
)

var ErrMalformedTask = errors.New("malformed task message")

type Repo interface {
	FindByExternalID(ctx context.Context, taskID string) (*domain.TranslationRecord, error)
}

type Processor interface {
	Process(ctx context.Context, userID int, req domain.TranslationRequest) (*domain.TranslationRecord, error)
}

type Consumer interface {
	Consume(ctx context.Context, prefetch int, queue string, handler mq.Handle) error
}

// Service drains the task queue and runs each task through the billed
// translation flow, using the task id as the record's external id.
type Service struct {
	queue     string
	prefetch  int
	consumer  Consumer
	repo      Repo
	processor Processor
}

func New(cfg *config.Config, consumer Consumer, repo Repo, processor Processor) *Service {
	return &Service{
		queue:     cfg.TaskQueue,
		prefetch:  cfg.WorkerCount,
		consumer:  consumer,
		repo:      repo,
		processor: processor,
	}
}

// Run blocks until ctx is done or the delivery channel closes.
func (s *Service) Run(ctx context.Context) error {
	zap.L().Info("Task worker started", zap.String("queue", s.queue), zap.Int("prefetch", s.prefetch))
	err := s.consumer.Consume(ctx, s.prefetch, s.queue, s.Handle)
	if errors.Is(err, context.Canceled) {
		zap.L().Info("Context canceled, stopping task worker")
		return nil
	}
	return err
}

// Handle processes one delivery. A nil result acks it, a temporary error
// requeues it and any other error drops it.
func (s *Service) Handle(ctx context.Context, body []byte) error {
	var msg domain.TaskMessage
	if err := json.Unmarshal(body, &msg); err != nil || msg.TaskID == "" || msg.UserID <= 0 {
		zap.L().Error("Dropping malformed task", zap.ByteString("body", body), zap.Error(err))
		metrics.RecordTaskHandled("malformed")
		return ErrMalformedTask
	}

	existing, err := s.repo.FindByExternalID(ctx, msg.TaskID)
	if err != nil {
		metrics.RecordTaskHandled("retry")
		return mq.Temporary(fmt.Errorf("failed to look up task %s: %w", msg.TaskID, err))
	}
	if existing != nil {
		zap.L().Info("Task already processed, skipping", zap.String("taskID", msg.TaskID))
		metrics.RecordTaskHandled("duplicate")
		return nil
	}

	_, err = s.processor.Process(ctx, msg.UserID, domain.TranslationRequest{
		Text:       msg.InputText,
		SourceLang: msg.SourceLang,
		TargetLang: msg.TargetLang,
		Model:      msg.Model,
		ExternalID: msg.TaskID,
	})

	switch {
	case err == nil:
		metrics.RecordTaskHandled("done")
		zap.L().Info("Task processed", zap.String("taskID", msg.TaskID), zap.Int("userID", msg.UserID))
		return nil
	case errors.Is(err, domain.ErrTranslationEngine):
		metrics.RecordTaskHandled("done")
		zap.L().Warn("Task charged but engine failed", zap.String("taskID", msg.TaskID), zap.Error(err))
		return nil
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrDuplicateExternalID),
		errors.Is(err, domain.ErrChargedNotRecorded):
		// requeueing any of these would either fail again or charge twice
		metrics.RecordTaskHandled("rejected")
		zap.L().Warn("Task rejected", zap.String("taskID", msg.TaskID), zap.Int("userID", msg.UserID), zap.Error(err))
		return nil
	default:
		metrics.RecordTaskHandled("retry")
		zap.L().Error("Task failed, requeueing", zap.String("taskID", msg.TaskID), zap.Error(err))
		return mq.Temporary(err)
	}
}
