package storage

import (
	"context"
	"fmt"
	"path"

	"umrah-booking/pkg/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cloudinaryStorage keeps the Cloudinary public id as the stored path.
type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    *zap.Logger
}

func NewCloudinary(config utils.StorageConfig, log *zap.Logger) (Storage, error) {
	cld, err := cloudinary.NewFromParams(config.CloudinaryName, config.CloudinaryKey, config.CloudinarySecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	return &cloudinaryStorage{
		cld:    cld,
		folder: config.CloudinaryFolder,
		log:    log.With(zap.String("storage", "cloudinary")),
	}, nil
}

func (s *cloudinaryStorage) Save(ctx context.Context, folder string, file Upload) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file.Content, uploader.UploadParams{
		Folder:   path.Join(s.folder, folder),
		PublicID: uuid.NewString(),
	})
	if err != nil {
		s.log.Error("Failed to upload image", zap.Error(err), zap.String("filename", file.Filename))
		return "", fmt.Errorf("upload %s: %w", file.Filename, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("upload %s: %s", file.Filename, resp.Error.Message)
	}

	return resp.PublicID, nil
}

func (s *cloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("destroy %s: %s", publicID, resp.Error.Message)
	}
	return nil
}

func (s *cloudinaryStorage) URL(publicID string) string {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return ""
	}

	url, err := img.String()
	if err != nil {
		return ""
	}
	return url
}
