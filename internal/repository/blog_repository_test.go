package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munsemsem/internal/common"
	"munsemsem/internal/models"
)

func blogColumns() []string {
	return []string{"blog_id", "author_id", "title", "category", "image_url", "body", "created_at", "updated_at"}
}

func TestBlogRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	blog := &models.Blog{
		AuthorID: "author-123",
		Title:    "Akwaaba",
		Category: "travel",
		ImageURL: "blog_images/abc.jpg",
		Body:     "Welcome to the blog.",
	}

	mock.ExpectExec("INSERT INTO blogs").
		WithArgs(
			sqlmock.AnyArg(), // generated blog_id
			"author-123",
			"Akwaaba",
			"travel",
			"blog_images/abc.jpg",
			"Welcome to the blog.",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), blog)

	require.NoError(t, err)
	assert.NotEmpty(t, blog.BlogID)
	assert.False(t, blog.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_GetAll_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns()).
		AddRow("blog-2", "author-123", "Second", "travel", "blog_images/2.jpg", "body", now, now).
		AddRow("blog-1", "author-123", "First", "travel", "blog_images/1.jpg", "body", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM blogs ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	blogs, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "blog-2", blogs[0].BlogID)
	assert.True(t, blogs[0].CreatedAt.After(blogs[1].CreatedAt))
}

func TestBlogRepository_GetByAuthorID_OrdersByUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns()).
		AddRow("blog-1", "author-123", "Edited", "travel", "blog_images/1.jpg", "body", now.Add(-time.Hour), now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM blogs WHERE author_id = $1 ORDER BY updated_at DESC`)).
		WithArgs("author-123").
		WillReturnRows(rows)

	blogs, err := repo.GetByAuthorID(context.Background(), "author-123")

	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "blog-1", blogs[0].BlogID)
}

func TestBlogRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM blogs WHERE blog_id = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	blog, err := repo.GetByID(context.Background(), "missing")

	assert.Nil(t, blog)
	assert.ErrorIs(t, err, common.ErrBlogNotFound)
}

func TestBlogRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	blog := &models.Blog{
		BlogID:   "blog-1",
		AuthorID: "author-123",
		Title:    "Edited",
		Category: "travel",
		ImageURL: "blog_images/1.jpg",
		Body:     "new body",
	}

	mock.ExpectExec("UPDATE blogs SET").
		WithArgs("Edited", "travel", "blog_images/1.jpg", "new body", sqlmock.AnyArg(), "blog-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), blog)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectExec("UPDATE blogs SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Blog{BlogID: "missing"})

	assert.ErrorIs(t, err, common.ErrBlogNotFound)
}

func TestBlogRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blogs WHERE blog_id").
			WithArgs("blog-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), "blog-1"))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blogs WHERE blog_id").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), common.ErrBlogNotFound)
	})
}
