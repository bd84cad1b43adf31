package handler

import (
	"strconv"

	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LogbookHandler struct {
	uc *usecase.LogbookUsecase
}

func NewLogbookHandler(uc *usecase.LogbookUsecase) *LogbookHandler {
	return &LogbookHandler{uc: uc}
}

type SubmitLogbookRequest struct {
	Date           string `json:"date" validate:"required"`
	ActivityDetail string `json:"activity_detail" validate:"required"`
	ResultOutput   string `json:"result_output" validate:"required"`
}

func (h *LogbookHandler) SubmitDay(c *fiber.Ctx) error {
	var req SubmitLogbookRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	entry, err := h.uc.SubmitDay(actorFrom(c), usecase.SubmitLogbookInput{
		Date:           req.Date,
		ActivityDetail: req.ActivityDetail,
		ResultOutput:   req.ResultOutput,
	})
	if err != nil {
		return Fail(c, err)
	}

	return Created(c, "Logbook berhasil dikirim", entry)
}

func (h *LogbookHandler) Months(c *fiber.Ctx) error {
	internshipID, _ := strconv.ParseUint(c.Query("internship_id"), 10, 32)

	months, err := h.uc.Months(actorFrom(c), uint(internshipID))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Berhasil mengambil logbook per bulan", months)
}

type ReviewMonthRequest struct {
	InternshipID    uint   `json:"internship_id" validate:"required"`
	Month           string `json:"month" validate:"required"` // Format YYYY-MM
	Decision        string `json:"decision" validate:"required"`
	RejectionReason string `json:"rejection_reason"`
}

func (h *LogbookHandler) ReviewMonth(c *fiber.Ctx) error {
	var req ReviewMonthRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	err := h.uc.ReviewMonth(actorFrom(c), req.InternshipID, req.Month, req.Decision, req.RejectionReason)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Review logbook bulan berhasil disimpan", nil)
}
