package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"munsemsem/internal/config"
	"munsemsem/internal/database"
	"munsemsem/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	BlogService service.BlogService
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		BlogService: services.Blog,
		DB:          db,
		Cfg:         config,
		Validate:    validator.New(),
	}
}

func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]string{"msg": "munsemsem blog API"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}
	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
