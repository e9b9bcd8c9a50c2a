package service

import (
	"context"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"munsemsem/internal/common"
	"munsemsem/internal/config"
	"munsemsem/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:       "test-secret",
		TokenDuration:      time.Hour,
		StoreTimeout:       5 * time.Second,
		SignupCodeRequired: true,
		BcryptCost:         bcrypt.MinCost,
	}
}

// fakeAuthorRepo keeps authors keyed by email and by id.
type fakeAuthorRepo struct {
	byEmail   map[string]*models.Author
	byID      map[string]*models.Author
	createErr error
	updateErr error
	created   []*models.Author
	updated   []*models.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{
		byEmail: map[string]*models.Author{},
		byID:    map[string]*models.Author{},
	}
}

func (f *fakeAuthorRepo) add(author *models.Author) {
	f.byEmail[author.Email] = author
	f.byID[author.AuthorID] = author
}

func (f *fakeAuthorRepo) Create(ctx context.Context, author *models.Author, password string) error {
	if f.createErr != nil {
		return f.createErr
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	author.PasswordHash = string(hash)
	f.created = append(f.created, author)
	f.add(author)
	return nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, authorID string) (*models.Author, error) {
	author, ok := f.byID[authorID]
	if !ok {
		return nil, common.ErrAuthorNotFound
	}
	copied := *author
	return &copied, nil
}

func (f *fakeAuthorRepo) GetByEmail(ctx context.Context, email string) (*models.Author, error) {
	author, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrAuthorNotFound
	}
	copied := *author
	return &copied, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, author *models.Author) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[author.AuthorID]; !ok {
		return common.ErrAuthorNotFound
	}
	f.updated = append(f.updated, author)
	f.add(author)
	return nil
}

func (f *fakeAuthorRepo) VerifyPassword(ctx context.Context, email, password string) (*models.Author, error) {
	author, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(author.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}
	copied := *author
	return &copied, nil
}

// fakeCodeRepo mirrors the single-use redemption contract.
type fakeCodeRepo struct {
	codes map[string]*models.SecretCode
}

func newFakeCodeRepo(codes ...string) *fakeCodeRepo {
	repo := &fakeCodeRepo{codes: map[string]*models.SecretCode{}}
	for _, code := range codes {
		repo.codes[code] = &models.SecretCode{Code: code}
	}
	return repo
}

func (f *fakeCodeRepo) Create(ctx context.Context, code *models.SecretCode) error {
	f.codes[code.Code] = code
	return nil
}

func (f *fakeCodeRepo) GetByCode(ctx context.Context, code string) (*models.SecretCode, error) {
	found, ok := f.codes[code]
	if !ok {
		return nil, common.ErrCodeNotFound
	}
	return found, nil
}

func (f *fakeCodeRepo) Redeem(ctx context.Context, code, authorID string) error {
	found, ok := f.codes[code]
	if !ok {
		return common.ErrCodeNotFound
	}
	if found.Used {
		return common.ErrCodeAlreadyUsed
	}
	found.Used = true
	found.UsedBy = authorID
	return nil
}

// fakeStorage records saved and removed keys.
type fakeStorage struct {
	saved     []string
	removed   []string
	saveErr   error
	removeErr error
}

func (f *fakeStorage) Save(ctx context.Context, prefix, fileName string, file io.Reader, size int64) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	key := prefix + "/" + fileName
	f.saved = append(f.saved, key)
	return key, nil
}

func (f *fakeStorage) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, key)
	return nil
}

func pngUpload(name string) *ImageUpload {
	content := "\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 32)
	return &ImageUpload{
		FileName: name,
		File:     strings.NewReader(content),
		Size:     int64(len(content)),
	}
}
