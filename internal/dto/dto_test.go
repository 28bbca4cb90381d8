package dto

import (
	"testing"
	"time"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTranslateRequestToDomain(t *testing.T) {
	tests := []struct {
		name     string
		req      TranslateRequestDTO
		expected string
	}{
		{name: "input_text wins", req: TranslateRequestDTO{InputText: "a", Text: "b"}, expected: "a"},
		{name: "text alias", req: TranslateRequestDTO{Text: "b"}, expected: "b"},
		{name: "neither", req: TranslateRequestDTO{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToDomain().Text)
		})
	}
}

func TestNewHistoryItem(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cost := int64(1)

	translation := NewHistoryItem(domain.HistoryItem{
		Kind:      domain.HistoryKindTranslation,
		Timestamp: at,
		Translation: &domain.TranslationRecord{
			ID: 3, InputText: "hi", OutputText: "hallo", SourceLang: "en", TargetLang: "de", Cost: &cost,
		},
	})
	assert.Equal(t, HistoryItemDTO{
		Kind: "translation", Timestamp: at, ID: 3,
		InputText: "hi", OutputText: "hallo", SourceLang: "en", TargetLang: "de", Cost: &cost,
	}, translation)

	transaction := NewHistoryItem(domain.HistoryItem{
		Kind:        domain.HistoryKindTransaction,
		Timestamp:   at,
		Transaction: &domain.Transaction{ID: 9, Amount: 10, Kind: domain.TransactionKindTopUp},
	})
	assert.Equal(t, HistoryItemDTO{
		Kind: "transaction", Timestamp: at, ID: 9, Amount: 10, Type: "TOPUP",
	}, transaction)
}
