package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"munsemsem/internal/middleware"
	"munsemsem/internal/models"
	"munsemsem/internal/service"
)

func (h *Handlers) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.BlogService.List(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if blogs == nil {
		blogs = []models.Blog{}
	}
	WriteJSON(w, map[string][]models.Blog{"blogs": blogs}, http.StatusOK)
}

func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["id"]

	blog, err := h.BlogService.Get(r.Context(), blogID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]*models.Blog{"blog": blog}, http.StatusOK)
}

func (h *Handlers) GetBlogsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	blogs, err := h.BlogService.ListByCategory(r.Context(), category)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if blogs == nil {
		blogs = []models.Blog{}
	}
	WriteJSON(w, map[string][]models.Blog{"blogs": blogs}, http.StatusOK)
}

func (h *Handlers) GetMyBlogs(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "No token found", http.StatusBadRequest)
		return
	}

	blogs, err := h.BlogService.ListMine(r.Context(), claims.AuthorID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if blogs == nil {
		blogs = []models.Blog{}
	}
	WriteJSON(w, map[string][]models.Blog{"blogs": blogs}, http.StatusOK)
}

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
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

	image, closeFile, err := imageFromForm(r)
	if err != nil {
		WriteError(w, "Could not read uploaded file", http.StatusBadRequest)
		return
	}
	defer closeFile()

	serviceReq := service.CreateBlogRequest{
		AuthorID: claims.AuthorID,
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
		Body:     r.FormValue("body"),
		Image:    image,
	}

	blog, err := h.BlogService.Create(r.Context(), serviceReq)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]*models.Blog{"blog": blog}, http.StatusCreated)
}

func (h *Handlers) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "No token found", http.StatusBadRequest)
		return
	}

	blogID := mux.Vars(r)["id"]

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Could not parse form", http.StatusBadRequest)
		return
	}

	image, closeFile, err := imageFromForm(r)
	if err != nil {
		WriteError(w, "Could not read uploaded file", http.StatusBadRequest)
		return
	}
	defer closeFile()

	serviceReq := service.UpdateBlogRequest{
		AuthorID: claims.AuthorID,
		BlogID:   blogID,
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
		Body:     r.FormValue("body"),
		Image:    image,
	}

	blog, err := h.BlogService.Update(r.Context(), serviceReq)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]*models.Blog{"updatedBlog": blog}, http.StatusOK)
}

func (h *Handlers) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "No token found", http.StatusBadRequest)
		return
	}

	blogID := mux.Vars(r)["id"]

	if err := h.BlogService.Delete(r.Context(), claims.AuthorID, blogID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Msg: "Blog deleted"}, http.StatusOK)
}
