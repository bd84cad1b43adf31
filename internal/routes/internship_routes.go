package routes

import (
	"simagang-backend/config"
	"simagang-backend/internal/handler"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupInternshipRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	repo := repository.NewInternshipRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	uc := usecase.NewInternshipUsecase(repo, userRepo, auditRepo, log)
	hdl := handler.NewInternshipHandler(uc)

	api := app.Group("/api/internship", middleware.Auth(cfg.JWTSecret))

	api.Post("/", middleware.Role("admin"), hdl.Create)
	api.Put("/:id/mentor", middleware.Role("admin"), hdl.AssignMentor)
	api.Put("/:id/status", middleware.Role("admin"), hdl.SetStatus)
	api.Post("/sweep", middleware.Role("admin"), hdl.CompleteExpired)

	api.Get("/", hdl.List)
	api.Get("/:id", hdl.Get)
}
