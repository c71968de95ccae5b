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

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Upsert(ctx context.Context, profile *entity.Profile) error
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT id, user_id, phone, address, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p entity.Profile
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Phone,
		&p.Address,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find profile of user %s: %w", userID.String(), err)
	}

	return &p, nil
}

// Upsert keeps one profile row per user.
func (r *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET phone = EXCLUDED.phone, address = EXCLUDED.address, updated_at = EXCLUDED.updated_at
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Phone,
		profile.Address,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert profile", zap.Error(err), zap.String("user_id", profile.UserID.String()))
		return fmt.Errorf("upsert profile of user %s: %w", profile.UserID.String(), err)
	}

	return nil
}
