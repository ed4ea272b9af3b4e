// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "schoolku_backend/internals/features/finance/fees/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
)

// UserRoutes: permukaan login biasa (wali murid / murid) — baca saja.
func UserRoutes(user fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(user, db)
	feeRoute.FeesUserRoutes(user, db)
}
