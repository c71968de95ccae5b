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

type HeroImageRepository interface {
	Create(ctx context.Context, hero *entity.HeroImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HeroImage, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.HeroImage, error)
	Update(ctx context.Context, hero *entity.HeroImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type heroImageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHeroImageRepository(db database.PgxIface, log *zap.Logger) HeroImageRepository {
	return &heroImageRepository{
		db:  db,
		log: log.With(zap.String("repository", "hero_image")),
	}
}

func (r *heroImageRepository) Create(ctx context.Context, hero *entity.HeroImage) error {
	query := `INSERT INTO hero_images (id, title, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query, hero.ID, hero.Title, hero.IsActive, hero.CreatedAt, hero.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create hero image", zap.Error(err), zap.String("title", hero.Title))
		return fmt.Errorf("create hero image: %w", err)
	}

	return nil
}

func (r *heroImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HeroImage, error) {
	query := `SELECT id, title, is_active, created_at, updated_at FROM hero_images WHERE id = $1`

	var h entity.HeroImage
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&h.ID, &h.Title, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hero image", zap.Error(err), zap.String("hero_image_id", id.String()))
		return nil, fmt.Errorf("find hero image %s: %w", id.String(), err)
	}

	return &h, nil
}

func (r *heroImageRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.HeroImage, error) {
	query := `
		SELECT id, title, is_active, created_at, updated_at
		FROM hero_images
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY created_at DESC
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, activeOnly)
	if err != nil {
		r.log.Error("Failed to list hero images", zap.Error(err))
		return nil, fmt.Errorf("list hero images: %w", err)
	}
	defer rows.Close()

	var heroes []*entity.HeroImage
	for rows.Next() {
		var h entity.HeroImage
		if err := rows.Scan(&h.ID, &h.Title, &h.IsActive, &h.CreatedAt, &h.UpdatedAt); err != nil {
			r.log.Error("Failed to scan hero image row", zap.Error(err))
			return nil, fmt.Errorf("scan hero image row: %w", err)
		}
		heroes = append(heroes, &h)
	}

	return heroes, rows.Err()
}

func (r *heroImageRepository) Update(ctx context.Context, hero *entity.HeroImage) error {
	query := `UPDATE hero_images SET title = $2, is_active = $3, updated_at = $4 WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, hero.ID, hero.Title, hero.IsActive, hero.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update hero image", zap.Error(err), zap.String("hero_image_id", hero.ID.String()))
		return fmt.Errorf("update hero image %s: %w", hero.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hero image %s not found", hero.ID.String())
	}

	return nil
}

func (r *heroImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM hero_images WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete hero image", zap.Error(err), zap.String("hero_image_id", id.String()))
		return fmt.Errorf("delete hero image %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hero image %s not found", id.String())
	}

	return nil
}
