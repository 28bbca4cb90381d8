package domain

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidKind         = errors.New("unsupported transaction kind")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidInput        = errors.New("invalid translation input")
	ErrDuplicateExternalID = errors.New("external id already exists")
	ErrTranslationEngine   = errors.New("translation engine error")
	ErrChargedNotRecorded  = errors.New("charged without record")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
