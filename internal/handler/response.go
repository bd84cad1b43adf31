package handler

import (
	"errors"

	"simagang-backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Success membungkus response sukses dengan format seragam
// {success, message, data}.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

var statusByCode = map[string]int{
	domain.CodeValidation:        fiber.StatusBadRequest,
	domain.CodeEvidenceMissing:   fiber.StatusBadRequest,
	domain.CodeForbidden:         fiber.StatusForbidden,
	domain.CodeNotFound:          fiber.StatusNotFound,
	domain.CodeConflict:          fiber.StatusConflict,
	domain.CodeDuplicate:         fiber.StatusConflict,
	domain.CodeAlreadyCheckedIn:  fiber.StatusConflict,
	domain.CodeAlreadyCheckedOut: fiber.StatusConflict,
	domain.CodeInvalidState:      fiber.StatusUnprocessableEntity,
	domain.CodeNotCheckedIn:      fiber.StatusUnprocessableEntity,
}

// Fail memetakan error engine ke HTTP status + body seragam. Error di luar
// taksonomi engine dianggap kesalahan server.
func Fail(c *fiber.Ctx, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		status, ok := statusByCode[derr.Code]
		if !ok {
			status = fiber.StatusInternalServerError
		}
		body := fiber.Map{
			"success": false,
			"code":    derr.Code,
			"message": derr.Message,
		}
		if len(derr.Fields) > 0 {
			body["errors"] = derr.Fields
		}
		return c.Status(status).JSON(body)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Terjadi kesalahan pada server",
	})
}

// parseBody mem-parse body request lalu menjalankan tag validate; hasil
// kegagalan dikembalikan sebagai ValidationError {errors: [{path, msg}]}.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewValidationError(domain.FieldError{Path: "body", Msg: "format data tidak valid"})
	}
	if err := validate.Struct(out); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]domain.FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, domain.FieldError{Path: fe.Field(), Msg: fe.Tag()})
			}
			return domain.NewValidationError(fields...)
		}
		return domain.NewValidationError(domain.FieldError{Path: "body", Msg: "format data tidak valid"})
	}
	return nil
}

// actorFrom mengambil ActorContext yang disiapkan middleware Auth.
func actorFrom(c *fiber.Ctx) domain.ActorContext {
	if actor, ok := c.Locals("actor").(domain.ActorContext); ok {
		return actor
	}
	return domain.ActorContext{}
}
