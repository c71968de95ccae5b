package usecase

import (
	"context"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaManager ties stored files to image rows. Files live outside the database, so
// every mutation runs as: store new files, change rows in a transaction, then delete
// either the new files (rollback) or the released ones (commit).
type MediaManager struct {
	repo    *repository.Repository
	storage storage.Storage
	log     *zap.Logger
}

func NewMediaManager(repo *repository.Repository, store storage.Storage, log *zap.Logger) *MediaManager {
	return &MediaManager{
		repo:    repo,
		storage: store,
		log:     log.With(zap.String("service", "media")),
	}
}

// URL returns the public address of a stored path.
func (m *MediaManager) URL(path string) string {
	return m.storage.URL(path)
}

// Transact stores uploads under folder, then runs fn in one transaction with the stored
// paths. fn returns the paths it released; they are deleted only after commit.
func (m *MediaManager) Transact(
	ctx context.Context,
	folder string,
	uploads []storage.Upload,
	fn func(ctx context.Context, stored []string) (released []string, err error),
) error {
	stored, err := m.store(ctx, folder, uploads)
	if err != nil {
		return err
	}

	var released []string
	err = m.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		released, err = fn(ctx, stored)
		return err
	})
	if err != nil {
		m.discard(context.WithoutCancel(ctx), stored)
		return err
	}

	m.discard(context.WithoutCancel(ctx), released)
	return nil
}

func (m *MediaManager) store(ctx context.Context, folder string, uploads []storage.Upload) ([]string, error) {
	paths := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		path, err := m.storage.Save(ctx, folder, upload)
		if err != nil {
			m.log.Error("Failed to store upload", zap.Error(err), zap.String("filename", upload.Filename))
			m.discard(context.WithoutCancel(ctx), paths)
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// discard deletes files best-effort. A leftover file is logged, never surfaced to the caller.
func (m *MediaManager) discard(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := m.storage.Delete(ctx, path); err != nil {
			m.log.Warn("Failed to delete stored file", zap.Error(err), zap.String("path", path))
		}
	}
}

// Attach inserts one image row per stored path.
func (m *MediaManager) Attach(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	now := time.Now()
	images := make([]*entity.Image, 0, len(paths))
	for _, path := range paths {
		images = append(images, &entity.Image{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			ImageableID:   ownerID,
			ImageableType: ownerType,
			Path:          path,
		})
	}

	return m.repo.Image.CreateBatch(ctx, images)
}

// ReplaceSingle makes path the only image of the owner and returns the paths it replaced.
func (m *MediaManager) ReplaceSingle(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID, path string) ([]string, error) {
	released, err := m.DetachAll(ctx, ownerType, ownerID)
	if err != nil {
		return nil, err
	}

	if err := m.Attach(ctx, ownerType, ownerID, []string{path}); err != nil {
		return nil, err
	}

	return released, nil
}

// SyncMany deletes the given images of the owner and attaches newPaths. Every id must
// belong to the owner. When required is set the owner must keep at least one image.
func (m *MediaManager) SyncMany(
	ctx context.Context,
	ownerType entity.ImageableType,
	ownerID uuid.UUID,
	deleteIDs []uuid.UUID,
	newPaths []string,
	required bool,
) ([]string, error) {
	var released []string
	deleteIDs = uniqueIDs(deleteIDs)

	if len(deleteIDs) > 0 {
		images, err := m.repo.Image.FindByIDs(ctx, deleteIDs)
		if err != nil {
			return nil, err
		}

		// an unknown id counts as foreign
		if len(images) != len(deleteIDs) {
			return nil, ErrUnauthorizedDelete
		}
		for _, img := range images {
			if img.ImageableType != ownerType || img.ImageableID != ownerID {
				m.log.Warn("Image delete outside owner",
					zap.String("image_id", img.ID.String()),
					zap.String("owner_id", ownerID.String()),
				)
				return nil, ErrUnauthorizedDelete
			}
			released = append(released, img.Path)
		}
	}

	if required {
		existing, err := m.repo.Image.CountByOwner(ctx, ownerType, ownerID)
		if err != nil {
			return nil, err
		}
		if existing-int64(len(deleteIDs))+int64(len(newPaths)) < 1 {
			return nil, ErrDeleteAllImages
		}
	}

	if err := m.repo.Image.DeleteByIDs(ctx, deleteIDs); err != nil {
		return nil, err
	}

	if err := m.Attach(ctx, ownerType, ownerID, newPaths); err != nil {
		return nil, err
	}

	return released, nil
}

// DetachAll removes every image row of the owner and returns their paths.
func (m *MediaManager) DetachAll(ctx context.Context, ownerType entity.ImageableType, ownerID uuid.UUID) ([]string, error) {
	images, err := m.repo.Image.FindByOwner(ctx, ownerType, ownerID)
	if err != nil {
		return nil, err
	}

	if err := m.repo.Image.DeleteByOwner(ctx, ownerType, ownerID); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(images))
	for _, img := range images {
		paths = append(paths, img.Path)
	}
	return paths, nil
}
