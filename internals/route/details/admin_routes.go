// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "schoolku_backend/internals/features/finance/fees/route"
	yearRoute "schoolku_backend/internals/features/school/academics/academic_years/route"
	gradeRoute "schoolku_backend/internals/features/school/classes/grades/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
)

// AdminRoutes: permukaan staff/admin. Role dicek per-handler
// (EnsureStaff/EnsureAdmin) supaya pesan errornya seragam.
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	yearRoute.AcademicYearAdminRoutes(admin, db)
	gradeRoute.GradeAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	feeRoute.FeesAdminRoutes(admin, db)
}
