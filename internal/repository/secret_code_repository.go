package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"munsemsem/internal/common"
	"munsemsem/internal/models"
)

type secretCodeRepository struct {
	db *sqlx.DB
}

func NewSecretCodeRepository(db *sqlx.DB) SecretCodeRepository {
	return &secretCodeRepository{db: db}
}

func (r *secretCodeRepository) Create(ctx context.Context, code *models.SecretCode) error {
	if code.CodeID == "" {
		code.CodeID = uuid.New().String()
	}

	now := time.Now()
	code.CreatedAt = now
	code.UpdatedAt = now

	query := `
		INSERT INTO secret_codes (code_id, code, used, used_by, created_at, updated_at)
		VALUES (:code_id, :code, :used, :used_by, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, code)
	if err != nil {
		return fmt.Errorf("could not create secret code: %w", err)
	}

	return nil
}

func (r *secretCodeRepository) GetByCode(ctx context.Context, code string) (*models.SecretCode, error) {
	var secretCode models.SecretCode

	query := `SELECT * FROM secret_codes WHERE code = $1`

	err := r.db.GetContext(ctx, &secretCode, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrCodeNotFound
		}
		return nil, fmt.Errorf("could not get secret code: %w", err)
	}

	return &secretCode, nil
}

// Redeem marks a code used exactly once. The conditional update is
// the whole trick: under concurrent signups with the same code only
// one UPDATE matches a row, everyone else sees ErrCodeAlreadyUsed.
func (r *secretCodeRepository) Redeem(ctx context.Context, code, authorID string) error {
	query := `
		UPDATE secret_codes SET
			used = TRUE,
			used_by = $1,
			updated_at = $2
		WHERE code = $3 AND used = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, authorID, time.Now(), code)
	if err != nil {
		return fmt.Errorf("could not redeem secret code: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check redeemed rows: %w", err)
	}

	if rowsAffected > 0 {
		return nil
	}

	// nothing matched: either the code does not exist or someone got
	// there first
	if _, err := r.GetByCode(ctx, code); err != nil {
		return err
	}

	return common.ErrCodeAlreadyUsed
}
