package main

import (
	"fmt"
	"log"

	"simagang-backend/config"
	"simagang-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Memulai database seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := config.Load()
	db, err := config.ConnectDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Gagal koneksi ke database: %v", err)
	}

	database.SeedAll(db)

	fmt.Println("Seeding selesai!")
}
