package app

import (
	"log"

	"munsemsem/internal/config"
	"munsemsem/internal/database"
	"munsemsem/internal/repository"
	"munsemsem/internal/service"
	"munsemsem/internal/storage"
)

// App wires the dependency graph: database, media storage,
// repositories, services.
func App(cfg *config.Config) (*database.DB, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	store := newStorage(cfg)

	repo := repository.NewRepository(db.DB, cfg.BcryptCost)

	services := service.NewService(repo, cfg, store)

	return db, services
}

func newStorage(cfg *config.Config) storage.Storage {
	switch cfg.StorageBackend {
	case "minio":
		minioStore, err := storage.NewMinIOStorage(cfg)
		if err != nil {
			log.Fatalf("Could not initialize MinIO: %v", err)
		}
		return minioStore
	default:
		diskStore, err := storage.NewDiskStorage(cfg.UploadsDir)
		if err != nil {
			log.Fatalf("Could not initialize disk storage: %v", err)
		}
		return diskStore
	}
}
