package handler

import (
	"github.com/maldura7/clover-inventory-system/internal/service"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the register request body
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account with the "user" role
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return apperr.Validation("All fields required")
	}

	resp, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login authenticates and issues a bearer token
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	if req.Email == "" || req.Password == "" {
		return apperr.Validation("Email and password required")
	}

	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Me returns the caller's profile
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile, err := h.authService.Profile(actorID(c))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
