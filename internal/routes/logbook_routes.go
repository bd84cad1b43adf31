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

func SetupLogbookRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	repo := repository.NewLogbookRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	uc := usecase.NewLogbookUsecase(repo, internshipRepo, auditRepo, log)
	hdl := handler.NewLogbookHandler(uc)

	api := app.Group("/api/logbook", middleware.Auth(cfg.JWTSecret))

	api.Post("/", middleware.Role("intern"), hdl.SubmitDay)
	api.Get("/months", hdl.Months)
	api.Post("/review-month", middleware.Role("mentor"), hdl.ReviewMonth)
}
