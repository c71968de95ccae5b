package repository

import (
	"context"
	"errors"
	"fmt"

	"umrah-booking/internal/data/entity"
	"umrah-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VerificationRepository interface {
	Create(ctx context.Context, v *entity.Verification) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Verification, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type verificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationRepository(db database.PgxIface, log *zap.Logger) VerificationRepository {
	return &verificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification")),
	}
}

func (r *verificationRepository) Create(ctx context.Context, v *entity.Verification) error {
	query := `
		INSERT INTO verifications (id, user_id, code, new_contact, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		v.ID,
		v.UserID,
		v.Code,
		v.NewContact,
		v.ExpiresAt,
		v.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create verification",
			zap.Error(err),
			zap.String("user_id", v.UserID.String()),
		)
		return fmt.Errorf("create verification for user %s: %w", v.UserID.String(), err)
	}

	return nil
}

func (r *verificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Verification, error) {
	query := `
		SELECT id, user_id, code, new_contact, expires_at, created_at
		FROM verifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var v entity.Verification
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&v.ID,
		&v.UserID,
		&v.Code,
		&v.NewContact,
		&v.ExpiresAt,
		&v.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find verification",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find verification of user %s: %w", userID.String(), err)
	}

	return &v, nil
}

func (r *verificationRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM verifications WHERE user_id = $1`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, userID); err != nil {
		r.log.Error("Failed to delete verifications",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete verifications of user %s: %w", userID.String(), err)
	}

	return nil
}

func (r *verificationRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM verifications WHERE expires_at < NOW()`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to purge expired verifications", zap.Error(err))
		return 0, fmt.Errorf("purge expired verifications: %w", err)
	}

	return result.RowsAffected(), nil
}
