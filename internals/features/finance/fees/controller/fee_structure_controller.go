// file: internals/features/finance/fees/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FeeStructureController struct {
	DB *gorm.DB
}

// POST /fee-structures
// Create + materialisasi assignment dalam satu transaksi.
func (h *FeeStructureController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	var req dto.FeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	st, res, err := service.CreateStructure(h.DB, req.ToInput())
	if err != nil {
		return jsonServiceError(c, err)
	}

	return helper.JsonCreated(c, "fee structure created", dto.FeeStructureCreateResponse{
		Structure: dto.ToFeeStructureResponse(*st),
		Inserted:  res.Inserted,
		Skipped:   res.Skipped,
	})
}

// GET /fee-structures
func (h *FeeStructureController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&model.FeeStructure{}).Where("NOT fee_structure_is_direct")
	if v := c.Query("academic_year_id"); v != "" {
		yearID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid academic_year_id")
		}
		q = q.Where("fee_structure_academic_year_id = ?", yearID)
	}
	if v := c.Query("grade_id"); v != "" {
		gradeID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid grade_id")
		}
		q = q.Where("fee_structure_grade_id = ?", gradeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeStructure
	if err := q.Order("fee_structure_due_date ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.FeeStructureResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToFeeStructureResponse(m))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

// GET /fee-structures/:id
func (h *FeeStructureController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.FeeStructure
	if err := h.DB.First(&m, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToFeeStructureResponse(m))
}

// PUT /fee-structures/:id
// Amount/due_date baru TIDAK menjalar ke assignment yang sudah terbit.
func (h *FeeStructureController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var req dto.FeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	st, err := service.UpdateStructure(h.DB, id, req.ToInput())
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "fee structure updated", dto.ToFeeStructureResponse(*st))
}

// DELETE /fee-structures/:id?force=true
func (h *FeeStructureController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	force := c.QueryBool("force", false)

	res, err := service.DeleteStructure(h.DB, id, force, actorID)
	if err != nil {
		return jsonServiceError(c, err)
	}

	skipped := res.SkippedIDs
	if skipped == nil {
		skipped = []uuid.UUID{}
	}
	return helper.JsonDeleted(c, "fee structure deleted", fiber.Map{
		"fee_structure_id":       id,
		"cancelled_assignments":  res.Cancelled,
		"skipped_assignment_ids": skipped,
	})
}

// GET /fee-structures/applicable?student_id=&academic_year_id=
// Resolve scope untuk satu siswa + status assignment per structure.
func (h *FeeStructureController) Applicable(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
	}

	var st studentModel.Student
	if err := h.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	yearID := st.StudentAcademicYearID
	if v := c.Query("academic_year_id"); v != "" {
		if yearID, err = uuid.Parse(v); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid academic_year_id")
		}
	}

	resolved, err := service.ResolveStructures(h.DB, service.ResolveFilter{
		AcademicYearID: yearID,
		GradeID:        st.StudentGradeID,
		MandatoryOnly:  c.QueryBool("mandatory_only", false),
	})
	if err != nil {
		return jsonServiceError(c, err)
	}

	// status assignment siswa per structure (sekali query, bukan N+1)
	var asgs []model.StudentFeeAssignment
	if err := h.DB.
		Where("student_fee_assignment_student_id = ? AND student_fee_assignment_status <> ?",
			studentID, model.FeeAssignmentStatusCancelled).
		Find(&asgs).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	statusByStructure := make(map[uuid.UUID]model.FeeAssignmentStatus, len(asgs))
	for _, a := range asgs {
		statusByStructure[a.StudentFeeAssignmentStructureID] = a.StudentFeeAssignmentStatus
	}

	out := make([]dto.ApplicableStructureResponse, 0, len(resolved))
	for _, r := range resolved {
		item := dto.ApplicableStructureResponse{
			FeeStructureResponse: dto.ToFeeStructureResponse(r.FeeStructure),
		}
		if s, ok := statusByStructure[r.FeeStructureID]; ok {
			status := s
			item.AssignmentStatus = &status
		}
		out = append(out, item)
	}
	return helper.JsonOK(c, "", out)
}
