package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"munsemsem/cmd/app"
	"munsemsem/internal/config"
	handlers "munsemsem/internal/handler"
	"munsemsem/internal/middleware"
	"munsemsem/internal/token"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)
	codec := token.NewCodec(cfg.JWTSecretKey)

	router := newRouter(handler, codec, cfg)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running at http://localhost%s/", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func newRouter(handler *handlers.Handlers, codec *token.Codec, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()
	gate := middleware.AuthGate(codec)
	protected := func(h http.HandlerFunc) http.Handler { return gate(h) }

	router.HandleFunc("/", handler.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	router.Handle("/auth/author", protected(handler.GetAuthor)).Methods(http.MethodGet)
	router.Handle("/auth/update_profile", protected(handler.UpdateProfile)).Methods(http.MethodPut, http.MethodPatch)

	// my_blogs must register before the {id} route
	router.Handle("/blogs/my_blogs", protected(handler.GetMyBlogs)).Methods(http.MethodGet)
	router.HandleFunc("/blogs", handler.GetBlogs).Methods(http.MethodGet)
	router.HandleFunc("/blogs/category/{category}", handler.GetBlogsByCategory).Methods(http.MethodGet)
	router.HandleFunc("/blogs/{id}", handler.GetBlog).Methods(http.MethodGet)
	router.Handle("/blogs/create", protected(handler.CreateBlog)).Methods(http.MethodPost)
	router.Handle("/blogs/update_blog/{id}", protected(handler.UpdateBlog)).Methods(http.MethodPut)
	router.Handle("/blogs/delete_blog/{id}", protected(handler.DeleteBlog)).Methods(http.MethodDelete)

	// uploaded media is served back as static files on the disk backend
	if cfg.StorageBackend != "minio" {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	}

	return router
}
