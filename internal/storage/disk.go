package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStorage keeps uploads on the local filesystem under a base
// directory, the same directory the server exposes at /uploads.
type DiskStorage struct {
	baseDir string
}

func NewDiskStorage(baseDir string) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create uploads directory: %w", err)
	}
	return &DiskStorage{baseDir: baseDir}, nil
}

func (d *DiskStorage) Save(ctx context.Context, prefix, fileName string, file io.Reader, size int64) (string, error) {
	_, ext, body, err := sniffImage(file)
	if err != nil {
		return "", err
	}

	objectPath := filepath.Join(prefix, uuid.New().String()+ext)

	dir := filepath.Join(d.baseDir, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create media directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(d.baseDir, objectPath))
	if err != nil {
		return "", fmt.Errorf("could not create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("could not write media file: %w", err)
	}

	return filepath.ToSlash(objectPath), nil
}

func (d *DiskStorage) Remove(ctx context.Context, objectPath string) error {
	// object paths come from our own records, but never follow one
	// outside the base directory
	clean := filepath.Clean(filepath.FromSlash(objectPath))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid object path: %s", objectPath)
	}

	err := os.Remove(filepath.Join(d.baseDir, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove media file: %w", err)
	}

	return nil
}
