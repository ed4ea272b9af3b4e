// file: internals/features/school/classes/grades/route/grade_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "schoolku_backend/internals/features/school/classes/grades/controller"
)

func GradeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &gradeController.GradeController{DB: db}
	admin.Post("/grades", h.Create)
	admin.Get("/grades", h.List)
	admin.Put("/grades/:id", h.Update)
	admin.Get("/grades/:id/divisions", h.ListDivisions)
	admin.Post("/divisions", h.CreateDivision)
}
