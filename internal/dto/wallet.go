package dto

import "time"

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"42"`
}

type TopUpRequestDTO struct {
	Amount int64 `json:"amount" validate:"gt=0" example:"10"`
}

type TransactionResponseDTO struct {
	ID        int       `json:"id" example:"7"`
	Amount    int64     `json:"amount" example:"1"`
	Type      string    `json:"type" example:"DEBIT"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T12:00:00Z"`
}
