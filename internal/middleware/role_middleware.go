package middleware

import (
	"simagang-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Role membatasi endpoint untuk role tertentu. Otorisasi per-entity
// (kepemilikan, binding mentor) tetap di engine; ini hanya gerbang kasar.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := c.Locals("actor").(domain.ActorContext)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Akses ditolak",
			})
		}

		for _, role := range allowedRoles {
			if role == actor.Role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Akses ditolak: role Anda tidak diizinkan",
		})
	}
}
