package handler

import (
	"io"
	"strconv"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PresenceHandler struct {
	uc *usecase.PresenceUsecase
}

func NewPresenceHandler(uc *usecase.PresenceUsecase) *PresenceHandler {
	return &PresenceHandler{uc: uc}
}

// evidenceFrom membaca form multipart absensi: foto + koordinat + label
// lokasi. Latitude/longitude dibedakan antara "tidak dikirim" dan "0".
func evidenceFrom(c *fiber.Ctx) usecase.EvidenceInput {
	in := usecase.EvidenceInput{Location: c.FormValue("location")}

	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		if f, err := fh.Open(); err == nil {
			defer f.Close()
			if data, err := io.ReadAll(f); err == nil {
				in.Photo = data
				in.PhotoMime = fh.Header.Get("Content-Type")
			}
		}
	}

	if v := c.FormValue("latitude"); v != "" {
		if lat, err := strconv.ParseFloat(v, 64); err == nil {
			in.Latitude = &lat
		}
	}
	if v := c.FormValue("longitude"); v != "" {
		if lng, err := strconv.ParseFloat(v, 64); err == nil {
			in.Longitude = &lng
		}
	}

	return in
}

func (h *PresenceHandler) CheckIn(c *fiber.Ctx) error {
	presence, err := h.uc.CheckIn(actorFrom(c), evidenceFrom(c))
	if err != nil {
		return Fail(c, err)
	}

	return Created(c, "Check-in berhasil", fiber.Map{
		"status": presence.Status,
		"waktu":  presence.CheckIn,
		"data":   presence,
	})
}

func (h *PresenceHandler) CheckOut(c *fiber.Ctx) error {
	presence, err := h.uc.CheckOut(actorFrom(c), evidenceFrom(c))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Check-out berhasil", fiber.Map{
		"waktu": presence.CheckOut,
		"data":  presence,
	})
}

func (h *PresenceHandler) TodayStatus(c *fiber.Ctx) error {
	status, presence, err := h.uc.TodayStatus(actorFrom(c))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Status kehadiran hari ini", fiber.Map{
		"status": status,
		"data":   presence,
	})
}

func (h *PresenceHandler) Recap(c *fiber.Ctx) error {
	month := c.Query("month")
	year := c.Query("year")
	if month == "" || year == "" {
		return Fail(c, domain.NewValidationError(
			domain.FieldError{Path: "month", Msg: "wajib diisi"},
			domain.FieldError{Path: "year", Msg: "wajib diisi"},
		))
	}

	internshipID, _ := strconv.ParseUint(c.Query("internship_id"), 10, 32)

	rekap, err := h.uc.Recap(actorFrom(c), uint(internshipID), month, year)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Rekap kehadiran berhasil", rekap)
}

func (h *PresenceHandler) History(c *fiber.Ctx) error {
	internshipID, _ := strconv.ParseUint(c.Query("internship_id"), 10, 32)

	history, err := h.uc.History(actorFrom(c), uint(internshipID))
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Riwayat kehadiran berhasil diambil", history)
}
