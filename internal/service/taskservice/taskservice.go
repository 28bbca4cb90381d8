package taskservice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByExternalID(ctx context.Context, taskID string) (*domain.TranslationRecord, error)
}

type Publisher interface {
	Publish(ctx context.Context, exchange string, routingKey string, body []byte) error
}

type Service struct {
	repo      Repo
	publisher Publisher
	queue     string
	newID     func() string
}

func New(repo Repo, publisher Publisher, queue string) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		queue:     queue,
		newID:     uuid.NewString,
	}
}

// Enqueue publishes the request for the worker and returns its task id.
// Billing happens later, when the worker processes the task.
func (s *Service) Enqueue(ctx context.Context, userID int, req domain.TranslationRequest) (string, error) {
	req, err := req.Normalize()
	if err != nil {
		return "", err
	}

	taskID := s.newID()
	body, err := json.Marshal(domain.TaskMessage{
		TaskID:     taskID,
		UserID:     userID,
		InputText:  req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Model:      req.Model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode task: %w", err)
	}

	// default exchange routes by queue name
	if err := s.publisher.Publish(ctx, "", s.queue, body); err != nil {
		zap.L().Error("failed to publish task", zap.String("taskID", taskID), zap.Int("userID", userID), zap.Error(err))
		return "", err
	}

	metrics.RecordTaskEnqueued()
	zap.L().Info("task enqueued", zap.String("taskID", taskID), zap.Int("userID", userID))
	return taskID, nil
}

// GetStatus reports done once a record with the task id exists. Unknown
// ids are indistinguishable from queued ones and report pending.
func (s *Service) GetStatus(ctx context.Context, taskID string) (*domain.TaskStatus, error) {
	record, err := s.repo.FindByExternalID(ctx, taskID)
	if err != nil {
		zap.L().Error("failed to look up task", zap.String("taskID", taskID), zap.Error(err))
		return nil, err
	}
	if record == nil {
		return &domain.TaskStatus{TaskID: taskID, Status: domain.TaskStatusPending}, nil
	}

	output := record.OutputText
	return &domain.TaskStatus{
		TaskID:     taskID,
		Status:     domain.TaskStatusDone,
		OutputText: &output,
		Cost:       record.Cost,
	}, nil
}
