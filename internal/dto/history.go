package dto

import (
	"time"

	"github.com/GlebRadaev/translator/internal/domain"
)

type HistoryItemDTO struct {
	Kind       string    `json:"kind" example:"translation"`
	Timestamp  time.Time `json:"timestamp" example:"2025-01-01T12:00:00Z"`
	ID         int       `json:"id" example:"3"`
	InputText  string    `json:"input_text,omitempty" example:"Hello"`
	OutputText string    `json:"output_text,omitempty" example:"Hallo"`
	SourceLang string    `json:"source_lang,omitempty" example:"en"`
	TargetLang string    `json:"target_lang,omitempty" example:"de"`
	Cost       *int64    `json:"cost,omitempty" example:"1"`
	Amount     int64     `json:"amount,omitempty" example:"10"`
	Type       string    `json:"type,omitempty" example:"TOPUP"`
}

func NewHistoryItem(item domain.HistoryItem) HistoryItemDTO {
	out := HistoryItemDTO{
		Kind:      item.Kind,
		Timestamp: item.Timestamp,
	}
	switch {
	case item.Translation != nil:
		out.ID = item.Translation.ID
		out.InputText = item.Translation.InputText
		out.OutputText = item.Translation.OutputText
		out.SourceLang = item.Translation.SourceLang
		out.TargetLang = item.Translation.TargetLang
		out.Cost = item.Translation.Cost
	case item.Transaction != nil:
		out.ID = item.Transaction.ID
		out.Amount = item.Transaction.Amount
		out.Type = string(item.Transaction.Kind)
	}
	return out
}

func NewTransactionResponse(t domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:        t.ID,
		Amount:    t.Amount,
		Type:      string(t.Kind),
		CreatedAt: t.CreatedAt,
	}
}
