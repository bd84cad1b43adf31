package main

import (
	"log"
	"path/filepath"

	"simagang-backend/config"
	"simagang-backend/internal/logger"
	"simagang-backend/internal/routes"
	"simagang-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Gagal inisialisasi logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.ConnectDB(cfg.DatabaseDSN)
	if err != nil {
		zlog.Fatal("Gagal koneksi ke database", zap.Error(err))
	}
	zlog.Info("Database terhubung")

	store, err := storage.NewLocalEvidenceStore(filepath.Join(cfg.UploadDir, "evidence"))
	if err != nil {
		zlog.Fatal("Gagal menyiapkan direktori upload", zap.Error(err))
	}

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	// Serve file bukti (lampiran izin, foto absensi)
	app.Static("/uploads", cfg.UploadDir)

	routes.SetupAuthRoutes(app, db, cfg, zlog)
	routes.SetupInternshipRoutes(app, db, cfg, zlog)
	routes.SetupPermissionRoutes(app, db, cfg, store, zlog)
	routes.SetupLogbookRoutes(app, db, cfg, zlog)
	routes.SetupPresenceRoutes(app, db, cfg, store, zlog)
	routes.SetupTaskRoutes(app, db, cfg, zlog)
	routes.SetupDashboardRoutes(app, db, cfg)

	zlog.Info("Server siap", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("Server berhenti", zap.Error(err))
	}
}
