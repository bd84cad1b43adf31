package handler

import (
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	token, user, err := h.uc.Login(req.Email, req.Password)
	if err != nil {
		return Fail(c, err)
	}

	return Success(c, "Login berhasil", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
	NoHP     string `json:"no_hp"`
	Kampus   string `json:"kampus"`
	Jurusan  string `json:"jurusan"`
}

func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return Fail(c, err)
	}

	user, err := h.uc.CreateUser(actorFrom(c), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		NoHP:     req.NoHP,
		Kampus:   req.Kampus,
		Jurusan:  req.Jurusan,
	})
	if err != nil {
		return Fail(c, err)
	}

	return Created(c, "User berhasil dibuat", user)
}
