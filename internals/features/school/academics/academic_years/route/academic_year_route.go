// file: internals/features/school/academics/academic_years/route/academic_year_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearController "schoolku_backend/internals/features/school/academics/academic_years/controller"
)

func AcademicYearAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &yearController.AcademicYearController{DB: db}
	admin.Post("/academic-years", h.Create)
	admin.Get("/academic-years", h.List)
	admin.Put("/academic-years/:id", h.Update)
	admin.Put("/academic-years/:id/activate", h.Activate)
}
