package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"munsemsem/internal/models"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author, password string) error
	GetByID(ctx context.Context, authorID string) (*models.Author, error)
	GetByEmail(ctx context.Context, email string) (*models.Author, error)
	Update(ctx context.Context, author *models.Author) error
	VerifyPassword(ctx context.Context, email, password string) (*models.Author, error)
}

type SecretCodeRepository interface {
	Create(ctx context.Context, code *models.SecretCode) error
	GetByCode(ctx context.Context, code string) (*models.SecretCode, error)
	Redeem(ctx context.Context, code, authorID string) error
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, blogID string) (*models.Blog, error)
	GetAll(ctx context.Context) ([]models.Blog, error)
	GetByCategory(ctx context.Context, category string) ([]models.Blog, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, blogID string) error
}

type Repository struct {
	Author     AuthorRepository
	SecretCode SecretCodeRepository
	Blog       BlogRepository
}

func NewRepository(db *sqlx.DB, bcryptCost int) *Repository {
	return &Repository{
		Author:     NewAuthorRepository(db, bcryptCost),
		SecretCode: NewSecretCodeRepository(db),
		Blog:       NewBlogRepository(db),
	}
}
