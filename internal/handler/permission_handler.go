package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PermissionHandler struct {
	uc *usecase.PermissionUsecase
}

func NewPermissionHandler(uc *usecase.PermissionUsecase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

type SubmitPermissionRequest struct {
	Type      string `json:"type" form:"type" validate:"required"`
	Title     string `json:"title" form:"title"`
	Reason    string `json:"reason" form:"reason" validate:"required"`
	StartDate string `json:"start_date" form:"start_date" validate:"required"`
	EndDate   string `json:"end_date" form:"end_date" validate:"required"`
}

// readAttachment membaca file multipart ke memori untuk divalidasi engine.
func readAttachment(fh *multipart.FileHeader) (*usecase.Attachment, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &usecase.Attachment{Data: data, Mime: fh.Header.Get("Content-Type")}, nil
}

func (h *PermissionHandler) Submit(c *fiber.Ctx) error {
	var req SubmitPermissionRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	// Lampiran opsional (surat dokter, dsb).
	var att *usecase.Attachment
	if fh, err := c.FormFile("attachment"); err == nil && fh != nil {
		a, err := readAttachment(fh)
		if err != nil {
			return Fail(c, domain.NewValidationError(domain.FieldError{Path: "attachment", Msg: "file tidak terbaca"}))
		}
		att = a
	}

	izin, err := h.uc.Submit(actorFrom(c), usecase.SubmitPermissionInput{
		Type:      req.Type,
		Title:     req.Title,
		Reason:    req.Reason,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, att)
	if err != nil {
		return Fail(c, err)
	}

	return Created(c, "Pengajuan izin berhasil dikirim", izin)
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, domain.NewValidationError(domain.FieldError{Path: "id", Msg: "harus angka"})
	}
	return uint(id), nil
}

func (h *PermissionHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	var req SubmitPermissionRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	izin, err := h.uc.Edit(actorFrom(c), id, usecase.SubmitPermissionInput{
		Type:      req.Type,
		Title:     req.Title,
		Reason:    req.Reason,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Pengajuan izin berhasil diubah", izin)
}

func (h *PermissionHandler) Withdraw(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	if err := h.uc.Withdraw(actorFrom(c), id); err != nil {
		return Fail(c, err)
	}

	return Success(c, "Pengajuan izin berhasil ditarik", nil)
}

type ReviewPermissionRequest struct {
	Decision        string `json:"decision" validate:"required"`
	RejectionReason string `json:"rejection_reason"`
}

func (h *PermissionHandler) Review(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return Fail(c, err)
	}

	var req ReviewPermissionRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	izin, err := h.uc.Review(actorFrom(c), id, req.Decision, req.RejectionReason)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Review izin berhasil disimpan", izin)
}

func (h *PermissionHandler) List(c *fiber.Ctx) error {
	internshipID, _ := strconv.ParseUint(c.Query("internship_id"), 10, 32)

	list, err := h.uc.List(actorFrom(c), uint(internshipID), repository.PermissionFilter{
		Status: c.Query("status"),
		Month:  c.Query("month"),
		Year:   c.Query("year"),
	})
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Berhasil mengambil daftar izin", list)
}
