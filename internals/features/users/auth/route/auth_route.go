// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/users/auth/controller"
)

// AuthPublicRoutes: endpoint tanpa token.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := &authController.AuthController{DB: db}
	public.Post("/auth/register", h.Register)
	public.Post("/auth/login", h.Login)
}

// AuthUserRoutes: endpoint yang butuh token valid.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &authController.AuthController{DB: db}
	user.Get("/auth/me", h.Me)
	user.Post("/auth/logout", h.Logout)
}
