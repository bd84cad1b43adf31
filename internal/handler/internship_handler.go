package handler

import (
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type InternshipHandler struct {
	uc *usecase.InternshipUsecase
}

func NewInternshipHandler(uc *usecase.InternshipUsecase) *InternshipHandler {
	return &InternshipHandler{uc: uc}
}

type CreateInternshipRequest struct {
	InternID  uint   `json:"intern_id" validate:"required"`
	MentorID  *uint  `json:"mentor_id"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (h *InternshipHandler) Create(c *fiber.Ctx) error {
	var req CreateInternshipRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	internship, err := h.uc.Create(actorFrom(c), usecase.CreateInternshipInput{
		InternID:  req.InternID,
		MentorID:  req.MentorID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return Fail(c, err)
	}

	return Created(c, "Internship berhasil dibuat", internship)
}

type AssignMentorRequest struct {
	MentorID uint `json:"mentor_id" validate:"required"`
}

func (h *InternshipHandler) AssignMentor(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	var req AssignMentorRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	internship, err := h.uc.AssignMentor(actorFrom(c), id, req.MentorID)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Mentor berhasil ditetapkan", internship)
}

type SetInternshipStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *InternshipHandler) SetStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	var req SetInternshipStatusRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	internship, err := h.uc.SetStatus(actorFrom(c), id, req.Status)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Status internship berhasil diubah", internship)
}

func (h *InternshipHandler) CompleteExpired(c *fiber.Ctx) error {
	count, err := h.uc.CompleteExpired(actorFrom(c))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Sweep internship kadaluarsa selesai", fiber.Map{"completed": count})
}

func (h *InternshipHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	internship, err := h.uc.Get(actorFrom(c), id)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Berhasil mengambil internship", internship)
}

func (h *InternshipHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(actorFrom(c))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Berhasil mengambil daftar internship", list)
}
