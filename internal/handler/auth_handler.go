package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"munsemsem/internal/middleware"
	"munsemsem/internal/models"
	"munsemsem/internal/service"
)

type SignupRequest struct {
	Firstname       string `json:"firstname" validate:"required,max=20"`
	Lastname        string `json:"lastname" validate:"required,max=20"`
	Gender          string `json:"gender"`
	DOB             string `json:"dob"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	SecretCode      string `json:"secretCode"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// parseDOB accepts a plain date or a full timestamp.
func parseDOB(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	if dob, err := time.Parse("2006-01-02", value); err == nil {
		return dob, true
	}
	if dob, err := time.Parse(time.RFC3339, value); err == nil {
		return dob, true
	}
	return time.Time{}, false
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusUnprocessableEntity)
		return
	}

	dob, ok := parseDOB(req.DOB)
	if !ok {
		WriteError(w, "Please provide a valid date of birth", http.StatusUnprocessableEntity)
		return
	}

	serviceReq := service.SignupRequest{
		Firstname:       req.Firstname,
		Lastname:        req.Lastname,
		Gender:          req.Gender,
		DOB:             dob,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		SecretCode:      req.SecretCode,
	}

	_, tokenString, err := h.AuthService.Signup(r.Context(), serviceReq)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, TokenResponse{Token: tokenString}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusUnprocessableEntity)
		return
	}

	_, tokenString, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, TokenResponse{Token: tokenString}, http.StatusOK)
}

func (h *Handlers) GetAuthor(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "No token found", http.StatusBadRequest)
		return
	}

	author, err := h.AuthService.CurrentAuthor(r.Context(), claims.AuthorID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]*models.Author{"author": author}, http.StatusOK)
}

type updateProfileForm struct {
	Firstname   string `validate:"max=20"`
	Lastname    string `validate:"max=20"`
	NewPassword string `validate:"omitempty,min=6"`
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "No token found", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Could not parse form", http.StatusBadRequest)
		return
	}

	form := updateProfileForm{
		Firstname:   r.FormValue("firstname"),
		Lastname:    r.FormValue("lastname"),
		NewPassword: r.FormValue("newPassword"),
	}
	if err := h.Validate.Struct(form); err != nil {
		WriteError(w, validationMessage(err), http.StatusUnprocessableEntity)
		return
	}

	dob, ok := parseDOB(r.FormValue("dob"))
	if !ok {
		WriteError(w, "Please provide a valid date of birth", http.StatusUnprocessableEntity)
		return
	}

	serviceReq := service.UpdateProfileRequest{
		AuthorID:        claims.AuthorID,
		Firstname:       form.Firstname,
		Lastname:        form.Lastname,
		Gender:          r.FormValue("gender"),
		DOB:             dob,
		OldPassword:     r.FormValue("oldPassword"),
		NewPassword:     form.NewPassword,
		ConfirmPassword: r.FormValue("confirmPassword"),
	}

	image, closeFile, err := imageFromForm(r)
	if err != nil {
		WriteError(w, "Could not read uploaded file", http.StatusBadRequest)
		return
	}
	defer closeFile()
	serviceReq.Image = image

	author, err := h.AuthService.UpdateProfile(r.Context(), serviceReq)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]*models.Author{"updatedAuthor": author}, http.StatusOK)
}

// imageFromForm pulls an optional multipart image field.
func imageFromForm(r *http.Request) (*service.ImageUpload, func(), error) {
	file, fileHeader, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	upload := &service.ImageUpload{
		FileName: fileHeader.Filename,
		File:     file,
		Size:     fileHeader.Size,
	}
	return upload, func() { file.Close() }, nil
}
