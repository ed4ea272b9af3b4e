// file: internals/features/finance/fees/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "schoolku_backend/internals/features/finance/fees/controller"
)

// FeesUserRoutes: permukaan baca untuk wali murid / murid (login biasa).
func FeesUserRoutes(user fiber.Router, db *gorm.DB) {
	assignment := &feeController.FeeAssignmentController{DB: db}
	collection := &feeController.FeeCollectionController{DB: db}

	// Wali murid melihat tagihan & riwayat pembayaran anaknya.
	user.Get("/students/:id/fee-assignments", assignment.ListByStudent)
	user.Get("/fee-collections", collection.List)
	user.Get("/fee-collections/:id", collection.GetByID)
}
