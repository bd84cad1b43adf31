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

func SetupTaskRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	repo := repository.NewTaskRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	uc := usecase.NewTaskUsecase(repo, internshipRepo, auditRepo, log)
	hdl := handler.NewTaskHandler(uc)

	api := app.Group("/api/task", middleware.Auth(cfg.JWTSecret))

	api.Post("/", middleware.Role("mentor"), hdl.Assign)
	api.Put("/:id", middleware.Role("mentor"), hdl.Update)
	api.Delete("/:id", middleware.Role("mentor"), hdl.Remove)

	// Status bebas diubah mentor maupun intern.
	api.Patch("/:id/status", hdl.SetStatus)
	api.Get("/", hdl.List)
}
