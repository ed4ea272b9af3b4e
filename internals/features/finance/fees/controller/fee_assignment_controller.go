// file: internals/features/finance/fees/controller/fee_assignment_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FeeAssignmentController struct {
	DB *gorm.DB
}

// GET /students/:id/fee-assignments
// is_overdue dihitung saat baca, tidak pernah tersimpan.
func (h *FeeAssignmentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student id")
	}

	rows, err := service.ListAssignmentsByStudent(h.DB, studentID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToFeeAssignmentResponses(rows, time.Now()))
}

// POST /fee-assignments/materialize
// Re-run manual; idempotent — run kedua menghasilkan inserted=0.
func (h *FeeAssignmentController) Materialize(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	var req dto.MaterializeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var res service.MaterializeResult
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		r, err := service.MaterializeForStructure(tx, req.FeeStructureID)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return jsonServiceError(c, err)
	}

	return helper.JsonOK(c, "assignments materialized", dto.MaterializeResponse{
		FeeStructureID: req.FeeStructureID,
		Inserted:       res.Inserted,
		Skipped:        res.Skipped,
	})
}

// GET /fee-assignments/outstanding?overdue_only=true
func (h *FeeAssignmentController) Outstanding(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)
	now := time.Now()

	f := service.OutstandingFilter{
		OverdueOnly: c.QueryBool("overdue_only", false),
		Offset:      p.Offset,
		Limit:       p.Limit,
	}
	if v := c.Query("student_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
		}
		f.StudentID = &id
	}
	if v := c.Query("fee_structure_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid fee_structure_id")
		}
		f.StructureID = &id
	}

	rows, total, err := service.ListOutstanding(h.DB, f, now)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.ToFeeAssignmentResponses(rows, now),
		helper.BuildPagination(total, p.Page, p.PerPage))
}
