package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"munsemsem/internal/common"
	"munsemsem/internal/models"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if blog.BlogID == "" {
		blog.BlogID = uuid.New().String()
	}

	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	query := `
		INSERT INTO blogs
		(blog_id, author_id, title, category, image_url, body, created_at, updated_at)
		VALUES
		(:blog_id, :author_id, :title, :category, :image_url, :body, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, blog)
	if err != nil {
		return fmt.Errorf("could not create blog: %w", err)
	}

	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, blogID string) (*models.Blog, error) {
	var blog models.Blog

	query := `SELECT * FROM blogs WHERE blog_id = $1`

	err := r.db.GetContext(ctx, &blog, query, blogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrBlogNotFound
		}
		return nil, fmt.Errorf("could not get blog: %w", err)
	}

	return &blog, nil
}

func (r *blogRepository) GetAll(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog

	query := `SELECT * FROM blogs ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &blogs, query)
	if err != nil {
		return nil, fmt.Errorf("could not list blogs: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) GetByCategory(ctx context.Context, category string) ([]models.Blog, error) {
	var blogs []models.Blog

	query := `SELECT * FROM blogs WHERE category = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &blogs, query, category)
	if err != nil {
		return nil, fmt.Errorf("could not list blogs by category: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) GetByAuthorID(ctx context.Context, authorID string) ([]models.Blog, error) {
	var blogs []models.Blog

	query := `SELECT * FROM blogs WHERE author_id = $1 ORDER BY updated_at DESC`

	err := r.db.SelectContext(ctx, &blogs, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("could not list blogs by author: %w", err)
	}

	return blogs, nil
}

// Update replaces the mutable fields only. The author reference is
// deliberately absent from the SET list so ownership can never be
// transferred through this path.
func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	blog.UpdatedAt = time.Now()

	query := `
		UPDATE blogs SET
			title = :title,
			category = :category,
			image_url = :image_url,
			body = :body,
			updated_at = :updated_at
		WHERE blog_id = :blog_id
	`

	result, err := r.db.NamedExecContext(ctx, query, blog)
	if err != nil {
		return fmt.Errorf("could not update blog: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return common.ErrBlogNotFound
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, blogID string) error {
	query := `DELETE FROM blogs WHERE blog_id = $1`

	result, err := r.db.ExecContext(ctx, query, blogID)
	if err != nil {
		return fmt.Errorf("could not delete blog: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return common.ErrBlogNotFound
	}

	return nil
}
