package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
	"github.com/jhoicas/asset-ledger-api/pkg/jwt"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalBaseID = "base_id"
)

// AuthMiddleware validates the Bearer token and loads the actor's identity
// into c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "expected format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		if claims.BaseID != nil {
			c.Locals(LocalBaseID, *claims.BaseID)
		}
		return c.Next()
	}
}

// RequireRole allows the request through only when the authenticated role is
// one of roles. Runs after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "insufficient role"})
	}
}

// GetActor rebuilds the scope actor from the request locals.
func GetActor(c *fiber.Ctx) scope.Actor {
	actor := scope.Actor{Role: GetRole(c)}
	if v, ok := c.Locals(LocalUserID).(int64); ok {
		actor.UserID = v
	}
	if v, ok := c.Locals(LocalBaseID).(int64); ok {
		actor.BaseID = &v
	}
	return actor
}

// GetRole returns the authenticated role, or "" before AuthMiddleware ran.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
