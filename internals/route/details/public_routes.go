// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "schoolku_backend/internals/features/users/auth/route"
)

// PublicRoutes: register/login tanpa token.
func PublicRoutes(public fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(public, db)
}
