package models

import (
	"time"
)

type Author struct {
	AuthorID     string    `json:"authorId" db:"author_id"`
	Firstname    string    `json:"firstname" db:"firstname"`
	Lastname     string    `json:"lastname" db:"lastname"`
	Gender       string    `json:"gender" db:"gender"`
	DOB          time.Time `json:"dob" db:"dob"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ProfilePic   string    `json:"profilePic,omitempty" db:"profile_pic"`
	SecretCode   string    `json:"-" db:"secret_code"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type SecretCode struct {
	CodeID    string    `json:"codeId" db:"code_id"`
	Code      string    `json:"code" db:"code"`
	Used      bool      `json:"used" db:"used"`
	UsedBy    string    `json:"usedBy,omitempty" db:"used_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Blog struct {
	BlogID    string    `json:"blogId" db:"blog_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Category  string    `json:"category" db:"category"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
