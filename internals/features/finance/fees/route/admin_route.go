// file: internals/features/finance/fees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "schoolku_backend/internals/features/finance/fees/controller"
)

// FeesAdminRoutes: seluruh permukaan tulis engine fee (staff/admin).
func FeesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	category := &feeController.FeeCategoryController{DB: db}
	structure := &feeController.FeeStructureController{DB: db}
	assignment := &feeController.FeeAssignmentController{DB: db}
	collection := &feeController.FeeCollectionController{DB: db}
	report := &feeController.FeeReportController{DB: db}

	// =========================
	// Fee Categories
	// =========================
	admin.Post("/fee-categories", category.Create)
	admin.Get("/fee-categories", category.List)
	admin.Put("/fee-categories/:id", category.Update)
	admin.Delete("/fee-categories/:id", category.Delete)

	// =========================
	// Fee Structures
	// =========================
	admin.Post("/fee-structures", structure.Create)
	admin.Get("/fee-structures", structure.List)
	admin.Get("/fee-structures/applicable", structure.Applicable)
	admin.Get("/fee-structures/:id", structure.GetByID)
	admin.Put("/fee-structures/:id", structure.Update)
	admin.Delete("/fee-structures/:id", structure.Delete)

	// =========================
	// Assignments
	// =========================
	admin.Post("/fee-assignments/materialize", assignment.Materialize)
	admin.Get("/fee-assignments/outstanding", assignment.Outstanding)
	admin.Get("/students/:id/fee-assignments", assignment.ListByStudent)

	// =========================
	// Collections
	// =========================
	admin.Post("/fee-collections", collection.Create)
	admin.Get("/fee-collections", collection.List)
	admin.Get("/fee-collections/:id", collection.GetByID)
	admin.Put("/fee-collections/:id/verify", collection.Verify)

	// =========================
	// Reports
	// =========================
	admin.Get("/fee-reports/dashboard", report.Dashboard)
	admin.Get("/fee-reports/collection-summary", report.CollectionSummary)
}
