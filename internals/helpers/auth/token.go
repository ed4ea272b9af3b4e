// file: internals/helpers/auth/token.go
package helperAuth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// MakeAccessToken menerbitkan access token pendek untuk user.
func MakeAccessToken(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// GetUserIDFromToken membaca user id yang sudah ditaruh middleware auth.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals("user_id").(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing user context")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}

// EnsureStaff: hanya admin/staff yang boleh menyentuh operasi fee engine.
func EnsureStaff(c *fiber.Ctx) error {
	switch GetRoleFromToken(c) {
	case constants.RoleAdmin, constants.RoleStaff:
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "staff role required")
}

func EnsureAdmin(c *fiber.Ctx) error {
	if GetRoleFromToken(c) == constants.RoleAdmin {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "admin role required")
}
