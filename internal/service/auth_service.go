package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"munsemsem/internal/common"
	"munsemsem/internal/config"
	"munsemsem/internal/models"
	"munsemsem/internal/repository"
	"munsemsem/internal/storage"
	"munsemsem/internal/token"
)

type SignupRequest struct {
	Firstname       string
	Lastname        string
	Gender          string
	DOB             time.Time
	Email           string
	Password        string
	ConfirmPassword string
	SecretCode      string
}

type UpdateProfileRequest struct {
	AuthorID        string
	Firstname       string
	Lastname        string
	Gender          string
	DOB             time.Time
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
	Image           *ImageUpload
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.Author, string, error)
	Login(ctx context.Context, email, password string) (*models.Author, string, error)
	CurrentAuthor(ctx context.Context, authorID string) (*models.Author, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.Author, error)
}

type authService struct {
	authorRepo repository.AuthorRepository
	codeRepo   repository.SecretCodeRepository
	storage    storage.Storage
	codec      *token.Codec
	cfg        *config.Config
}

func NewAuthService(authorRepo repository.AuthorRepository, codeRepo repository.SecretCodeRepository, storage storage.Storage, cfg *config.Config) AuthService {
	return &authService{
		authorRepo: authorRepo,
		codeRepo:   codeRepo,
		storage:    storage,
		codec:      token.NewCodec(cfg.JWTSecretKey),
		cfg:        cfg,
	}
}

// Signup runs the registration protocol. Order matters: format and
// confirmation checks come before code redemption so a request that
// would fail anyway never consumes an invite code. The insert itself
// still relies on the unique email index for the concurrent case.
func (s *authService) Signup(ctx context.Context, req SignupRequest) (*models.Author, string, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	if req.Password != req.ConfirmPassword {
		return nil, "", common.ErrPasswordMismatch
	}

	if _, err := s.authorRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, "", common.ErrDuplicateEmail
	}

	authorID := uuid.New().String()

	if s.cfg.SignupCodeRequired {
		if req.SecretCode == "" {
			return nil, "", common.ErrCodeNotFound
		}
		if err := s.codeRepo.Redeem(ctx, req.SecretCode, authorID); err != nil {
			return nil, "", mapTimeout(err)
		}
	}

	author := &models.Author{
		AuthorID:   authorID,
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Gender:     req.Gender,
		DOB:        req.DOB,
		Email:      req.Email,
		SecretCode: req.SecretCode,
	}

	if err := s.authorRepo.Create(ctx, author, req.Password); err != nil {
		return nil, "", mapTimeout(err)
	}

	tokenString, err := s.codec.Issue(author, s.cfg.TokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("could not issue token: %w", err)
	}

	return author, tokenString, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Author, string, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	author, err := s.authorRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", mapTimeout(err)
	}

	tokenString, err := s.codec.Issue(author, s.cfg.TokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("could not issue token: %w", err)
	}

	return author, tokenString, nil
}

func (s *authService) CurrentAuthor(ctx context.Context, authorID string) (*models.Author, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	author, err := s.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, mapTimeout(err)
	}

	return author, nil
}

func (s *authService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.Author, error) {
	ctx, cancel := withStoreTimeout(ctx, s.cfg)
	defer cancel()

	author, err := s.authorRepo.GetByID(ctx, req.AuthorID)
	if err != nil {
		return nil, mapTimeout(err)
	}

	if req.OldPassword != "" || req.NewPassword != "" || req.ConfirmPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(author.PasswordHash), []byte(req.OldPassword)); err != nil {
			return nil, common.ErrOldPasswordIncorrect
		}
		if req.NewPassword != req.ConfirmPassword {
			return nil, common.ErrPasswordMismatch
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("could not hash password: %w", err)
		}
		author.PasswordHash = string(hashedPassword)
	}

	if req.Firstname != "" {
		author.Firstname = req.Firstname
	}
	if req.Lastname != "" {
		author.Lastname = req.Lastname
	}
	if req.Gender != "" {
		author.Gender = req.Gender
	}
	if !req.DOB.IsZero() {
		author.DOB = req.DOB
	}

	oldPic := ""
	if req.Image != nil {
		newPic, err := s.storage.Save(ctx, "author_profile_images", req.Image.FileName, req.Image.File, req.Image.Size)
		if err != nil {
			return nil, mapTimeout(err)
		}
		oldPic = author.ProfilePic
		author.ProfilePic = newPic
	}

	if err := s.authorRepo.Update(ctx, author); err != nil {
		// the profile row is untouched; drop the file we just stored
		if req.Image != nil {
			if removeErr := s.storage.Remove(ctx, author.ProfilePic); removeErr != nil {
				log.Printf("warning: could not remove orphaned profile picture %s: %v", author.ProfilePic, removeErr)
			}
		}
		return nil, mapTimeout(err)
	}

	// the record now points at the new picture; removing the old file
	// is best effort and never fails the request
	if oldPic != "" {
		if err := s.storage.Remove(ctx, oldPic); err != nil {
			log.Printf("warning: could not remove old profile picture %s: %v", oldPic, err)
		}
	}

	return author, nil
}
