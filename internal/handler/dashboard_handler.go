package handler

import (
	"time"

	"simagang-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	now := time.Now()

	stats, err := h.repo.GetStats(now.Format("2006-01-02"), now.Format("01"), now.Format("2006"))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Berhasil mengambil statistik", stats)
}
