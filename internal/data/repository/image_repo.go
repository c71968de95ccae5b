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

type ImageRepository interface {
	CreateBatch(ctx context.Context, images []*entity.Image) error
	FindByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) ([]*entity.Image, error)
	FindLatestByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) (*entity.Image, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Image, error)
	CountByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) (int64, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) error
}

type imageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewImageRepository(db database.PgxIface, log *zap.Logger) ImageRepository {
	return &imageRepository{
		db:  db,
		log: log.With(zap.String("repository", "image")),
	}
}

const imageColumns = `id, imageable_id, imageable_type, path, created_at`

func scanImage(row pgx.Row) (*entity.Image, error) {
	var img entity.Image
	if err := row.Scan(&img.ID, &img.ImageableID, &img.ImageableType, &img.Path, &img.CreatedAt); err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepository) CreateBatch(ctx context.Context, images []*entity.Image) error {
	if len(images) == 0 {
		return nil
	}

	query := `INSERT INTO images (` + imageColumns + `) VALUES `
	args := make([]any, 0, len(images)*5)

	for i, img := range images {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", i*5+1, i*5+2, i*5+3, i*5+4, i*5+5)
		args = append(args, img.ID, img.ImageableID, string(img.ImageableType), img.Path, img.CreatedAt)
	}

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create images", zap.Error(err), zap.Int("count", len(images)))
		return fmt.Errorf("create images: %w", err)
	}

	return nil
}

func (r *imageRepository) FindByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) ([]*entity.Image, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE imageable_type = $1 AND imageable_id = $2
		ORDER BY created_at DESC, id
	`
	return r.list(ctx, query, string(ownerType), ownerID)
}

// FindLatestByOwner returns the primary image of the owner, which is the most recent one.
func (r *imageRepository) FindLatestByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) (*entity.Image, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE imageable_type = $1 AND imageable_id = $2
		ORDER BY created_at DESC, id
		LIMIT 1
	`

	img, err := scanImage(database.Conn(ctx, r.db).QueryRow(ctx, query, string(ownerType), ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest image",
			zap.Error(err),
			zap.String("imageable_type", string(ownerType)),
			zap.String("imageable_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find latest image of %s %s: %w", ownerType, ownerID.String(), err)
	}

	return img, nil
}

func (r *imageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, `SELECT `+imageColumns+` FROM images WHERE id = ANY($1)`, ids)
}

func (r *imageRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Image, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list images", zap.Error(err))
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var images []*entity.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			r.log.Error("Failed to scan image row", zap.Error(err))
			return nil, fmt.Errorf("scan image row: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

func (r *imageRepository) CountByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM images WHERE imageable_type = $1 AND imageable_id = $2`

	var count int64
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, string(ownerType), ownerID).Scan(&count); err != nil {
		r.log.Error("Failed to count images", zap.Error(err), zap.String("imageable_id", ownerID.String()))
		return 0, fmt.Errorf("count images of %s %s: %w", ownerType, ownerID.String(), err)
	}

	return count, nil
}

func (r *imageRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM images WHERE id = ANY($1)`, ids); err != nil {
		r.log.Error("Failed to delete images", zap.Error(err), zap.Int("count", len(ids)))
		return fmt.Errorf("delete images: %w", err)
	}

	return nil
}

func (r *imageRepository) DeleteByOwner(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) error {
	query := `DELETE FROM images WHERE imageable_type = $1 AND imageable_id = $2`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, string(ownerType), ownerID); err != nil {
		r.log.Error("Failed to delete owner images",
			zap.Error(err),
			zap.String("imageable_type", string(ownerType)),
			zap.String("imageable_id", ownerID.String()),
		)
		return fmt.Errorf("delete images of %s %s: %w", ownerType, ownerID.String(), err)
	}

	return nil
}
