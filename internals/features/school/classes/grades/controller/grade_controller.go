// file: internals/features/school/classes/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/classes/grades/dto"
	"schoolku_backend/internals/features/school/classes/grades/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type GradeController struct {
	DB *gorm.DB
}

// POST /grades
func (h *GradeController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	var req dto.GradeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	req.GradeName = strings.TrimSpace(req.GradeName)
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := model.Grade{
		GradeName:     req.GradeName,
		GradeLevel:    req.GradeLevel,
		GradeIsActive: true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "grade created", dto.ToGradeResponse(m))
}

// GET /grades
func (h *GradeController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.Grade{})
	if c.Query("active") == "true" {
		q = q.Where("grade_is_active = true")
	}

	var rows []model.Grade
	if err := q.Order("grade_level ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.GradeResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToGradeResponse(m))
	}
	return helper.JsonOK(c, "", out)
}

// PUT /grades/:id
func (h *GradeController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var req dto.GradeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.Grade
	if err := h.DB.First(&m, "grade_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "grade not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if req.GradeName != nil {
		m.GradeName = strings.TrimSpace(*req.GradeName)
	}
	if req.GradeLevel != nil {
		m.GradeLevel = *req.GradeLevel
	}
	if req.GradeIsActive != nil {
		m.GradeIsActive = *req.GradeIsActive
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "grade updated", dto.ToGradeResponse(m))
}

// POST /divisions
func (h *GradeController) CreateDivision(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	var req dto.DivisionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	req.DivisionName = strings.TrimSpace(req.DivisionName)
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var cnt int64
	if err := h.DB.Model(&model.Grade{}).
		Where("grade_id = ?", req.DivisionGradeID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return helper.JsonError(c, http.StatusNotFound, "grade not found")
	}

	m := model.Division{
		DivisionGradeID: req.DivisionGradeID,
		DivisionName:    req.DivisionName,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "division created", dto.ToDivisionResponse(m))
}

// GET /grades/:id/divisions
func (h *GradeController) ListDivisions(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var rows []model.Division
	if err := h.DB.Where("division_grade_id = ?", id).
		Order("division_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.DivisionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToDivisionResponse(m))
	}
	return helper.JsonOK(c, "", out)
}
