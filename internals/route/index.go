// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "schoolku_backend/internals/middlewares/auth"
	routeDetails "schoolku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthJWT(jwtOpts))
	routeDetails.UserRoutes(user, db)

	// ===================== ADMIN / STAFF =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthJWT(jwtOpts))
	routeDetails.AdminRoutes(admin, db)

	log.Println("✅ Routes ready")
}
