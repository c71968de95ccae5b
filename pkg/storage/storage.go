// Package storage saves and deletes uploaded images. Paths returned by Save are
// opaque to callers and are what gets persisted in the images table.
package storage

import (
	"context"
	"fmt"
	"io"

	"umrah-booking/pkg/utils"

	"go.uber.org/zap"
)

// Upload is a single incoming file.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type Storage interface {
	Save(ctx context.Context, folder string, file Upload) (string, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

// New builds the storage driver selected in config.
func New(config utils.StorageConfig, log *zap.Logger) (Storage, error) {
	switch config.Driver {
	case "", "local":
		return NewLocal(config.LocalPath, config.PublicURL, log)
	case "cloudinary":
		return NewCloudinary(config, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Driver)
	}
}
