package translationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, record *domain.TranslationRecord) (*domain.TranslationRecord, error) {
	query := `
		INSERT INTO translations (external_id, user_id, input_text, output_text, source_lang, target_lang, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		record.ExternalID,
		record.UserID,
		record.InputText,
		record.OutputText,
		record.SourceLang,
		record.TargetLang,
		record.Cost,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			zap.L().Warn("translation with external id already exists", zap.Stringp("externalID", record.ExternalID))
			return nil, domain.ErrDuplicateExternalID
		}
		zap.L().Error("can't save translation", zap.Error(err))
		return nil, err
	}
	return record, nil
}

// FindByExternalID returns nil without an error when no record carries taskID.
func (r *Repository) FindByExternalID(ctx context.Context, taskID string) (*domain.TranslationRecord, error) {
	query := `
		SELECT id, external_id, user_id, input_text, output_text, source_lang, target_lang, cost, created_at
		FROM translations
		WHERE external_id = $1
	`
	var record domain.TranslationRecord
	err := r.db.QueryRow(ctx, query, taskID).Scan(
		&record.ID,
		&record.ExternalID,
		&record.UserID,
		&record.InputText,
		&record.OutputText,
		&record.SourceLang,
		&record.TargetLang,
		&record.Cost,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find translation by external id", zap.String("externalID", taskID), zap.Error(err))
		return nil, err
	}
	return &record, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID, offset, limit int) ([]domain.TranslationRecord, error) {
	offset, limit = domain.ClampPage(offset, limit)
	query := `
		SELECT id, external_id, user_id, input_text, output_text, source_lang, target_lang, cost, created_at
		FROM translations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch translations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.TranslationRecord
	for rows.Next() {
		var record domain.TranslationRecord
		err := rows.Scan(
			&record.ID,
			&record.ExternalID,
			&record.UserID,
			&record.InputText,
			&record.OutputText,
			&record.SourceLang,
			&record.TargetLang,
			&record.Cost,
			&record.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan translation row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate translations", zap.Error(err))
		return nil, err
	}

	return records, nil
}
