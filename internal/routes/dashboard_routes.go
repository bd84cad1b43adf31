package routes

import (
	"simagang-backend/config"
	"simagang-backend/internal/handler"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	api := app.Group("/api/dashboard", middleware.Auth(cfg.JWTSecret), middleware.Role("admin"))
	api.Get("/stats", hdl.GetStats)
}
