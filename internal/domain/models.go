package domain

import "time"

// MaxPageLimit bounds every list query.
const MaxPageLimit = 100

type TransactionKind string

const (
	TransactionKindTopUp TransactionKind = "TOPUP"
	TransactionKindDebit TransactionKind = "DEBIT"
)

const (
	HistoryKindTranslation = "translation"
	HistoryKindTransaction = "transaction"
)

const (
	DefaultSourceLang = "auto"
	DefaultModel      = "marian"
)

const (
	TaskStatusQueued  = "queued"
	TaskStatusPending = "pending"
	TaskStatusDone    = "done"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Wallet struct {
	ID      int   `db:"id"`
	UserID  int   `db:"user_id"`
	Balance int64 `db:"balance"`
}

// Transaction is an immutable ledger entry. Amount is always positive, the
// direction is carried by Kind.
type Transaction struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Amount    int64           `db:"amount"`
	Kind      TransactionKind `db:"kind"`
	CreatedAt time.Time       `db:"created_at"`
}

// TranslationRecord is the outcome of one billed translation attempt.
// ExternalID is set only for requests that came through the task queue.
// OutputText is empty when the engine failed after the fee was charged.
type TranslationRecord struct {
	ID         int       `db:"id"`
	ExternalID *string   `db:"external_id"`
	UserID     int       `db:"user_id"`
	InputText  string    `db:"input_text"`
	OutputText string    `db:"output_text"`
	SourceLang string    `db:"source_lang"`
	TargetLang string    `db:"target_lang"`
	Cost       *int64    `db:"cost"`
	CreatedAt  time.Time `db:"created_at"`
}

type TranslationRequest struct {
	Text       string
	SourceLang string
	TargetLang string
	Model      string
	ExternalID string
}

// TaskMessage is the payload published to the task queue.
type TaskMessage struct {
	TaskID     string `json:"task_id"`
	UserID     int    `json:"user_id"`
	InputText  string `json:"input_text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Model      string `json:"model"`
}

type TaskStatus struct {
	TaskID     string
	Status     string
	OutputText *string
	Cost       *int64
}

type HistoryItem struct {
	Kind        string
	Timestamp   time.Time
	Translation *TranslationRecord
	Transaction *Transaction
}

// ClampPage normalises paging arguments: a non-positive or oversized limit
// becomes MaxPageLimit and a negative offset becomes zero.
func ClampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return offset, limit
}
