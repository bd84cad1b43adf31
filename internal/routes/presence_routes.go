package routes

import (
	"simagang-backend/config"
	"simagang-backend/internal/handler"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/storage"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupPresenceRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, store storage.EvidenceStore, log *zap.Logger) {
	repo := repository.NewPresenceRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	uc := usecase.NewPresenceUsecase(repo, permissionRepo, internshipRepo, auditRepo, store, cfg.CheckinCutoff, log)
	hdl := handler.NewPresenceHandler(uc)

	api := app.Group("/api/presence", middleware.Auth(cfg.JWTSecret))

	api.Post("/checkin", middleware.Role("intern"), hdl.CheckIn)
	api.Post("/checkout", middleware.Role("intern"), hdl.CheckOut)
	api.Get("/today", middleware.Role("intern"), hdl.TodayStatus)
	api.Get("/rekap", hdl.Recap)
	api.Get("/riwayat", hdl.History)
}
