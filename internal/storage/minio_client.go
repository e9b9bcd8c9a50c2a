package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"munsemsem/internal/config"
)

// MinIOStorage is the object-storage backend, for deployments where
// media must not live on the API host's disk.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

func NewMinIOStorage(cfg *config.Config) (*MinIOStorage, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("could not check MinIO bucket: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("could not create MinIO bucket: %w", err)
		}
	}

	return &MinIOStorage{client: client, bucket: cfg.MinIO.BucketName}, nil
}

func (m *MinIOStorage) Save(ctx context.Context, prefix, fileName string, file io.Reader, size int64) (string, error) {
	contentType, ext, body, err := sniffImage(file)
	if err != nil {
		return "", err
	}

	objectPath := path.Join(prefix, uuid.New().String()+ext)

	_, err = m.client.PutObject(ctx, m.bucket, objectPath, body, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
			},
		})
	if err != nil {
		return "", fmt.Errorf("could not upload to MinIO: %w", err)
	}

	return objectPath, nil
}

func (m *MinIOStorage) Remove(ctx context.Context, objectPath string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("could not remove from MinIO: %w", err)
	}
	return nil
}
