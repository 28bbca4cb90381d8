package dto

import (
	"time"

	"github.com/GlebRadaev/translator/internal/domain"
)

// TranslateRequestDTO accepts the text under either "input_text" or "text".
type TranslateRequestDTO struct {
	InputText  string `json:"input_text" validate:"max=5000,storable" example:"Hello, world"`
	Text       string `json:"text,omitempty" validate:"max=5000,storable" swaggerignore:"true"`
	SourceLang string `json:"source_lang" validate:"max=16,storable" example:"en"`
	TargetLang string `json:"target_lang" validate:"max=16,storable" example:"de"`
	Model      string `json:"model,omitempty" validate:"max=64,storable" example:"marian"`
}

func (r TranslateRequestDTO) ToDomain() domain.TranslationRequest {
	text := r.InputText
	if text == "" {
		text = r.Text
	}
	return domain.TranslationRequest{
		Text:       text,
		SourceLang: r.SourceLang,
		TargetLang: r.TargetLang,
		Model:      r.Model,
	}
}

type TranslationResponseDTO struct {
	ID         int       `json:"id" example:"3"`
	InputText  string    `json:"input_text" example:"Hello, world"`
	OutputText string    `json:"output_text" example:"Hallo, Welt"`
	SourceLang string    `json:"source_lang" example:"en"`
	TargetLang string    `json:"target_lang" example:"de"`
	Cost       *int64    `json:"cost" example:"1"`
	CreatedAt  time.Time `json:"created_at" example:"2025-01-01T12:00:00Z"`
}

func NewTranslationResponse(r *domain.TranslationRecord) TranslationResponseDTO {
	return TranslationResponseDTO{
		ID:         r.ID,
		InputText:  r.InputText,
		OutputText: r.OutputText,
		SourceLang: r.SourceLang,
		TargetLang: r.TargetLang,
		Cost:       r.Cost,
		CreatedAt:  r.CreatedAt,
	}
}

type TranslationErrorResponseDTO struct {
	Error  string                 `json:"error" example:"translation engine error"`
	Record TranslationResponseDTO `json:"record"`
}

type TaskQueuedResponseDTO struct {
	TaskID string `json:"task_id" example:"5f0c3b2e-8d9a-4c1e-9d7b-2f3a4b5c6d7e"`
	Status string `json:"status" example:"queued"`
}

type TaskStatusResponseDTO struct {
	TaskID     string  `json:"task_id" example:"5f0c3b2e-8d9a-4c1e-9d7b-2f3a4b5c6d7e"`
	Status     string  `json:"status" example:"done"`
	OutputText *string `json:"output_text,omitempty" example:"Hallo, Welt"`
	Cost       *int64  `json:"cost,omitempty" example:"1"`
}
