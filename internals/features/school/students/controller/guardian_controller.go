// file: internals/features/school/students/controller/guardian_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	userModel "schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type GuardianController struct {
	DB *gorm.DB
}

// POST /students/:id/guardians
func (h *GuardianController) Link(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var req dto.GuardianLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var cnt int64
	if err := h.DB.Model(&model.Student{}).
		Where("student_id = ?", studentID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return helper.JsonError(c, http.StatusNotFound, "student not found")
	}
	if err := h.DB.Model(&userModel.User{}).
		Where("user_id = ?", req.UserID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return helper.JsonError(c, http.StatusNotFound, "user not found")
	}

	m := model.StudentGuardian{
		StudentGuardianStudentID: studentID,
		StudentGuardianUserID:    req.UserID,
		StudentGuardianRelation:  req.Relation,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, http.StatusConflict, "guardian already linked to this student")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "guardian linked", dto.ToGuardianResponse(m))
}

// GET /students/:id/guardians
func (h *GuardianController) List(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var rows []model.StudentGuardian
	if err := h.DB.Where("student_guardian_student_id = ?", studentID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.GuardianResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToGuardianResponse(m))
	}
	return helper.JsonOK(c, "", out)
}

// DELETE /students/:id/guardians/:guardianId
func (h *GuardianController) Unlink(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	guardianID, err := uuid.Parse(c.Params("guardianId"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid guardian id")
	}

	res := h.DB.Delete(&model.StudentGuardian{},
		"student_guardian_id = ? AND student_guardian_student_id = ?", guardianID, studentID)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "guardian link not found")
	}
	return helper.JsonDeleted(c, "guardian unlinked", fiber.Map{"student_guardian_id": guardianID})
}
