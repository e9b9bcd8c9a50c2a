package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
}

type Config struct {
	ServerPort         int
	DB                 DB
	MinIO              MinIO
	JWTSecretKey       string
	TokenDuration      time.Duration
	StoreTimeout       time.Duration
	MaxUploadSize      int64
	StorageBackend     string // "disk" or "minio"
	UploadsDir         string
	SignupCodeRequired bool
	BcryptCost         int
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "munsemsem"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "uploads"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:         getEnvAsInt("SERVER_PORT", 8000),
		DB:                 LoadDB(),
		MinIO:              LoadMinIO(),
		JWTSecretKey:       getEnv("JWT_SECRET_KEY", ""),
		TokenDuration:      parseDuration(getEnv("TOKEN_DURATION", "1h"), time.Hour),
		StoreTimeout:       parseDuration(getEnv("STORE_TIMEOUT", "5s"), 5*time.Second),
		MaxUploadSize:      parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		StorageBackend:     getEnv("STORAGE_BACKEND", "disk"),
		UploadsDir:         getEnv("UPLOADS_DIR", "uploads"),
		SignupCodeRequired: getEnvBool("SIGNUP_CODE_REQUIRED", true),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", 12),
	}
}
