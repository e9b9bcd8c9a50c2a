package service

import (
	"context"
	"errors"
	"io"

	"munsemsem/internal/common"
	"munsemsem/internal/config"
	"munsemsem/internal/repository"
	"munsemsem/internal/storage"
)

type Service struct {
	Auth AuthService
	Blog BlogService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(rep.Author, rep.SecretCode, storage, cfg),
		Blog: NewBlogService(rep.Blog, storage, cfg),
	}
}

// ImageUpload is a file received from a multipart form.
type ImageUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

// withStoreTimeout bounds repository and storage calls so a stuck
// backend surfaces as ErrTimeout instead of hanging the request.
func withStoreTimeout(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, cfg.StoreTimeout)
}

func mapTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return common.ErrTimeout
	}
	return err
}
