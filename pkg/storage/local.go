package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type localStorage struct {
	root      string
	publicURL string
	log       *zap.Logger
}

// NewLocal stores files below root and serves them under publicURL.
func NewLocal(root, publicURL string, log *zap.Logger) (Storage, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}

	return &localStorage{
		root:      root,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       log.With(zap.String("storage", "local")),
	}, nil
}

func (s *localStorage) Save(ctx context.Context, folder string, file Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := path.Join(folder, uuid.NewString()+strings.ToLower(filepath.Ext(file.Filename)))
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("create folder %s: %w", folder, err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", rel, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file.Content); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("write file %s: %w", rel, err)
	}

	s.log.Debug("File stored", zap.String("path", rel))
	return rel, nil
}

func (s *localStorage) Delete(ctx context.Context, p string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+p)))
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file %s: %w", p, err)
	}
	return nil
}

func (s *localStorage) URL(p string) string {
	return s.publicURL + "/" + p
}
