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

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	userRepo := repository.NewUserRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	uc := usecase.NewAuthUsecase(userRepo, internshipRepo, auditRepo, cfg.JWTSecret, log)
	hdl := handler.NewAuthHandler(uc)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)

	// Pembuatan akun hanya lewat admin.
	api.Post("/users", middleware.Auth(cfg.JWTSecret), middleware.Role("admin"), hdl.CreateUser)
}
