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

func SetupPermissionRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, store storage.EvidenceStore, log *zap.Logger) {
	repo := repository.NewPermissionRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	uc := usecase.NewPermissionUsecase(repo, internshipRepo, auditRepo, store, cfg.MaxAttachmentMB, log)
	hdl := handler.NewPermissionHandler(uc)

	api := app.Group("/api/permission", middleware.Auth(cfg.JWTSecret))

	// Endpoint intern
	api.Post("/", middleware.Role("intern"), hdl.Submit)
	api.Put("/:id", middleware.Role("intern"), hdl.Edit)
	api.Delete("/:id", middleware.Role("intern"), hdl.Withdraw)

	// Endpoint mentor (approval)
	api.Post("/:id/review", middleware.Role("mentor"), hdl.Review)

	// Listing dengan filter eksplisit ?status=&month=&year=
	api.Get("/", hdl.List)
}
