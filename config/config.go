package config

import (
	"os"
	"strconv"
)

// Config menampung seluruh konfigurasi aplikasi yang dibaca dari environment.
// Cutoff check-in sengaja konfigurasi, bukan hardcode, karena jam masuk tiap
// instansi magang berbeda.
type Config struct {
	Port            string
	DatabaseDSN     string
	JWTSecret       string
	CheckinCutoff   string // Format HH:MM, contoh "09:00"
	UploadDir       string
	MaxAttachmentMB int
	LogLevel        string
}

func Load() *Config {
	return &Config{
		Port:            GetEnv("PORT", "3000"),
		DatabaseDSN:     GetEnv("DATABASE_DSN", "root:@tcp(127.0.0.1:3306)/simagang_db?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:       GetEnv("JWT_SECRET", "rahasia-simagang"),
		CheckinCutoff:   GetEnv("CHECKIN_CUTOFF", "09:00"),
		UploadDir:       GetEnv("UPLOAD_DIR", "./uploads"),
		MaxAttachmentMB: GetEnvAsInt("MAX_ATTACHMENT_MB", 5),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
