// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &studentController.StudentController{DB: db}
	g := &studentController.GuardianController{DB: db}

	admin.Post("/students", h.Create)
	admin.Get("/students", h.List)
	admin.Get("/students/:id", h.GetByID)
	admin.Put("/students/:id", h.Update)
	admin.Put("/students/:id/transfer", h.Transfer)
	admin.Put("/students/:id/deactivate", h.Deactivate)

	admin.Post("/students/:id/guardians", g.Link)
	admin.Get("/students/:id/guardians", g.List)
	admin.Delete("/students/:id/guardians/:guardianId", g.Unlink)
}
