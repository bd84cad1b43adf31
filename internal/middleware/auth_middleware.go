package middleware

import (
	"strings"

	"simagang-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth memvalidasi bearer token lalu membangun ActorContext eksplisit di
// Locals. Handler meneruskan ActorContext ke engine; tidak ada komponen yang
// membaca claims mentah selain middleware ini.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token tidak ditemukan",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token tidak valid atau kadaluwarsa",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token tidak valid",
			})
		}

		actor := domain.ActorContext{}
		if v, ok := claims["user_id"].(float64); ok {
			actor.UserID = uint(v)
		}
		if v, ok := claims["role"].(string); ok {
			actor.Role = v
		}
		if v, ok := claims["internship_id"].(float64); ok {
			actor.InternshipID = uint(v)
		}

		c.Locals("actor", actor)
		return c.Next()
	}
}
