package handler

import (
	"strconv"

	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	uc *usecase.TaskUsecase
}

func NewTaskHandler(uc *usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

type AssignTaskRequest struct {
	InternshipID uint   `json:"internship_id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	DueDate      string `json:"due_date"`
}

func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	var req AssignTaskRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	task, err := h.uc.Assign(actorFrom(c), usecase.AssignTaskInput{
		InternshipID: req.InternshipID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
	})
	if err != nil {
		return Fail(c, err)
	}

	return Created(c, "Task berhasil dibuat", task)
}

type SetTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *TaskHandler) SetStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	var req SetTaskStatusRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	task, err := h.uc.SetStatus(actorFrom(c), id, req.Status)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Status task berhasil diubah", task)
}

type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	var req UpdateTaskRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	task, err := h.uc.Update(actorFrom(c), id, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Task berhasil diubah", task)
}

func (h *TaskHandler) Remove(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	if err := h.uc.Remove(actorFrom(c), id); err != nil {
		return Fail(c, err)
	}

	return Success(c, "Task berhasil dihapus", nil)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	internshipID, _ := strconv.ParseUint(c.Query("internship_id"), 10, 32)

	list, err := h.uc.List(actorFrom(c), uint(internshipID))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Berhasil mengambil daftar task", list)
}
