package main

import (
	"context"
	"log"
	"math/rand"

	"munsemsem/internal/config"
	"munsemsem/internal/database"
	"munsemsem/internal/models"
	"munsemsem/internal/repository"
)

const codeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	codeLength = 7
	codeCount  = 15
)

func generateSecretCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeChars[rand.Intn(len(codeChars))]
	}
	return string(code)
}

// Seeds a batch of unused invite codes. Run once before opening
// signups.
func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	defer db.CloseDB()

	codeRepo := repository.NewSecretCodeRepository(db.DB)

	ctx := context.Background()
	for i := 0; i < codeCount; i++ {
		code := &models.SecretCode{
			Code: generateSecretCode(),
			Used: false,
		}

		if err := codeRepo.Create(ctx, code); err != nil {
			log.Fatalf("Could not create secret code: %v", err)
		}

		log.Printf("Created secret code: %s", code.Code)
	}
}
