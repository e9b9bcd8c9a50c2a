package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"munsemsem/internal/common"
	"munsemsem/internal/models"
)

type authorRepository struct {
	db         *sqlx.DB
	bcryptCost int
}

func NewAuthorRepository(db *sqlx.DB, bcryptCost int) AuthorRepository {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authorRepository{db: db, bcryptCost: bcryptCost}
}

// isUniqueViolation reports a Postgres unique-index conflict.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *authorRepository) Create(ctx context.Context, author *models.Author, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), r.bcryptCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	if author.AuthorID == "" {
		author.AuthorID = uuid.New().String()
	}
	author.PasswordHash = string(hashedPassword)

	now := time.Now()
	author.CreatedAt = now
	author.UpdatedAt = now

	query := `
		INSERT INTO authors
		(author_id, firstname, lastname, gender, dob, email, password_hash, profile_pic, secret_code, created_at, updated_at)
		VALUES
		(:author_id, :firstname, :lastname, :gender, :dob, :email, :password_hash, :profile_pic, :secret_code, :created_at, :updated_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, author)
	if err != nil {
		// the unique index on email is the authority; two concurrent
		// signups with the same address cannot both pass
		if isUniqueViolation(err) {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("could not create author: %w", err)
	}

	return nil
}

func (r *authorRepository) GetByID(ctx context.Context, authorID string) (*models.Author, error) {
	var author models.Author

	query := `SELECT * FROM authors WHERE author_id = $1`

	err := r.db.GetContext(ctx, &author, query, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("could not get author: %w", err)
	}

	return &author, nil
}

func (r *authorRepository) GetByEmail(ctx context.Context, email string) (*models.Author, error) {
	var author models.Author

	query := `SELECT * FROM authors WHERE email = $1`

	err := r.db.GetContext(ctx, &author, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("could not get author by email: %w", err)
	}

	return &author, nil
}

// VerifyPassword answers unknown email and wrong password with the
// same error so login responses cannot be used to enumerate accounts.
func (r *authorRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Author, error) {
	author, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrAuthorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(author.PasswordHash), []byte(password))
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return author, nil
}

func (r *authorRepository) Update(ctx context.Context, author *models.Author) error {
	author.UpdatedAt = time.Now()

	query := `
		UPDATE authors SET
			firstname = :firstname,
			lastname = :lastname,
			gender = :gender,
			dob = :dob,
			password_hash = :password_hash,
			profile_pic = :profile_pic,
			updated_at = :updated_at
		WHERE author_id = :author_id
	`

	result, err := r.db.NamedExecContext(ctx, query, author)
	if err != nil {
		return fmt.Errorf("could not update author: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return common.ErrAuthorNotFound
	}

	return nil
}
