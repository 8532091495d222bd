package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/application/auth"
	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
)

// AuthHandler serves login, profile and password endpoints.
type AuthHandler struct {
	uc  *auth.UseCase
	rec *audit.Recorder
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase, rec *audit.Recorder) *AuthHandler {
	return &AuthHandler{uc: uc, rec: rec}
}

// Login authenticates and returns a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	h.rec.Record(resp.User.ID, "LOGIN", "users", resp.User.ID, nil, c.IP())
	return c.JSON(resp)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := GetActor(c)
	resp, err := h.uc.Me(c.Context(), actor.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// ChangePassword rotates the caller's password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	actor := GetActor(c)
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	if err := h.uc.ChangePassword(c.Context(), actor.UserID, in); err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "CHANGE_PASSWORD", "users", actor.UserID, nil, c.IP())
	return c.JSON(dto.MessageResponse{Message: "password updated"})
}

// ListUsers returns every user (admin only, enforced in the router).
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}
