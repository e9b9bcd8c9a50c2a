package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"munsemsem/internal/common"
)

// validationMessage keeps the original API's wording for the common
// field failures.
func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		switch ve[0].Field() {
		case "Firstname":
			return "First Name must not be more than 20 characters"
		case "Lastname":
			return "Last Name must not be more than 20 characters"
		case "Email":
			return "Please provide a valid email"
		case "Password", "NewPassword":
			return "Your password must be more than 6 characters"
		case "ConfirmPassword":
			return "Please confirm your password"
		}
	}
	return "Invalid value"
}

type ErrorItem struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the error shape every endpoint shares.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: []ErrorItem{{Msg: message}}})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps the common error taxonomy to a status and a
// user-facing message. Unknown errors become a generic 500 with the
// cause logged, never leaked.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		WriteError(w, "Invalid value", http.StatusUnprocessableEntity)
	case errors.Is(err, common.ErrPasswordMismatch):
		WriteError(w, "Passwords must match", http.StatusUnprocessableEntity)
	case errors.Is(err, common.ErrOldPasswordIncorrect):
		WriteError(w, "Old password is incorrect", http.StatusUnprocessableEntity)
	case errors.Is(err, common.ErrDuplicateEmail):
		WriteError(w, "This author already exists", http.StatusUnprocessableEntity)
	case errors.Is(err, common.ErrInvalidCredentials):
		WriteError(w, "Invalid credentials", http.StatusUnprocessableEntity)
	case errors.Is(err, common.ErrCodeNotFound):
		WriteError(w, "Invalid secret code", http.StatusUnprocessableEntity)
	case errors.Is(err, common.ErrCodeAlreadyUsed):
		WriteError(w, "Secret code already used", http.StatusUnprocessableEntity)
	case errors.Is(err, common.ErrImageRequired):
		WriteError(w, "Image is required", http.StatusUnprocessableEntity)
	case errors.Is(err, common.ErrAuthorNotFound):
		WriteError(w, "Author not found", http.StatusNotFound)
	case errors.Is(err, common.ErrBlogNotFound):
		WriteError(w, "Blog Not Found", http.StatusNotFound)
	case errors.Is(err, common.ErrForbidden):
		WriteError(w, "Authorization Error", http.StatusForbidden)
	case errors.Is(err, common.ErrUnsupportedMediaType):
		WriteError(w, "File must be of type jpg, jpeg, png, gif or webp", http.StatusUnsupportedMediaType)
	case errors.Is(err, common.ErrTimeout):
		WriteError(w, "Request timed out", http.StatusGatewayTimeout)
	default:
		log.Printf("internal error: %v", err)
		WriteError(w, "Something went wrong", http.StatusInternalServerError)
	}
}
