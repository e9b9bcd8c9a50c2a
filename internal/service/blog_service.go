package service

import (
	"context"
	"log"
	"strings"

	"munsemsem/internal/common"
	"munsemsem/internal/config"
	"munsemsem/internal/models"
	"munsemsem/internal/repository"
	"munsemsem/internal/storage"
)

type CreateBlogRequest struct {
	AuthorID string
	Title    string
	Category string
	Body     string
	Image    *ImageUpload
}

type UpdateBlogRequest struct {
	AuthorID string
	BlogID   string
	Title    string
	Category string
	Body     string
	Image    *ImageUpload
}

type BlogService interface {
	List(ctx context.Context) ([]models.Blog, error)
	ListByCategory(ctx context.Context, category string) ([]models.Blog, error)
	ListMine(ctx context.Context, authorID string) ([]models.Blog, error)
	Get(ctx context.Context, blogID string) (*models.Blog, error)
	Create(ctx context.Context, req CreateBlogRequest) (*models.Blog, error)
	Update(ctx context.Context, req UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, authorID, blogID string) error
}

type blogService struct {
	blogRepo repository.BlogRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewBlogService(blogRepo repository.BlogRepository, storage storage.Storage, cfg *config.Config) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *blogService) List(ctx context.Context) ([]models.Blog, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	blogs, err := s.blogRepo.GetAll(ctx)
	if err != nil {
		return nil, mapTimeout(err)
	}
	return blogs, nil
}

func (s *blogService) ListByCategory(ctx context.Context, category string) ([]models.Blog, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	blogs, err := s.blogRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, mapTimeout(err)
	}
	return blogs, nil
}

func (s *blogService) ListMine(ctx context.Context, authorID string) ([]models.Blog, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	blogs, err := s.blogRepo.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, mapTimeout(err)
	}
	return blogs, nil
}

func (s *blogService) Get(ctx context.Context, blogID string) (*models.Blog, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, mapTimeout(err)
	}
	return blog, nil
}

func validateBlogFields(title, category, body string) error {
	if strings.TrimSpace(title) == "" ||
		strings.TrimSpace(category) == "" ||
		strings.TrimSpace(body) == "" {
		return common.ErrValidation
	}
	return nil
}

func (s *blogService) Create(ctx context.Context, req CreateBlogRequest) (*models.Blog, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	if err := validateBlogFields(req.Title, req.Category, req.Body); err != nil {
		return nil, err
	}

	if req.Image == nil {
		return nil, common.ErrImageRequired
	}

	imageURL, err := s.storage.Save(ctx, "blog_images", req.Image.FileName, req.Image.File, req.Image.Size)
	if err != nil {
		return nil, mapTimeout(err)
	}

	blog := &models.Blog{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Category: req.Category,
		ImageURL: imageURL,
		Body:     req.Body,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		// the document never existed, so the stored file is orphaned
		if removeErr := s.storage.Remove(ctx, imageURL); removeErr != nil {
			log.Printf("warning: could not remove orphaned blog image %s: %v", imageURL, removeErr)
		}
		return nil, mapTimeout(err)
	}

	return blog, nil
}

func (s *blogService) Update(ctx context.Context, req UpdateBlogRequest) (*models.Blog, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	blog, err := s.blogRepo.GetByID(ctx, req.BlogID)
	if err != nil {
		return nil, mapTimeout(err)
	}

	// only the owner mutates; the owner reference itself never changes
	if blog.AuthorID != req.AuthorID {
		return nil, common.ErrForbidden
	}

	if err := validateBlogFields(req.Title, req.Category, req.Body); err != nil {
		return nil, err
	}

	blog.Title = req.Title
	blog.Category = req.Category
	blog.Body = req.Body

	oldImage := ""
	if req.Image != nil {
		newImage, err := s.storage.Save(ctx, "blog_images", req.Image.FileName, req.Image.File, req.Image.Size)
		if err != nil {
			return nil, mapTimeout(err)
		}
		oldImage = blog.ImageURL
		blog.ImageURL = newImage
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		if req.Image != nil {
			if removeErr := s.storage.Remove(ctx, blog.ImageURL); removeErr != nil {
				log.Printf("warning: could not remove orphaned blog image %s: %v", blog.ImageURL, removeErr)
			}
		}
		return nil, mapTimeout(err)
	}

	// document committed first; file removal is best effort
	if oldImage != "" {
		if err := s.storage.Remove(ctx, oldImage); err != nil {
			log.Printf("warning: could not remove replaced blog image %s: %v", oldImage, err)
		}
	}

	return blog, nil
}

func (s *blogService) Delete(ctx context.Context, authorID, blogID string) error {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return mapTimeout(err)
	}

	if blog.AuthorID != authorID {
		return common.ErrForbidden
	}

	if err := s.blogRepo.Delete(ctx, blogID); err != nil {
		return mapTimeout(err)
	}

	if blog.ImageURL != "" {
		if err := s.storage.Remove(ctx, blog.ImageURL); err != nil {
			log.Printf("warning: could not remove deleted blog image %s: %v", blog.ImageURL, err)
		}
	}

	return nil
}
