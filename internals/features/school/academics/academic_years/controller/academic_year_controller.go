// file: internals/features/school/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/academic_years/dto"
	"schoolku_backend/internals/features/school/academics/academic_years/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AcademicYearController struct {
	DB *gorm.DB
}

func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// POST /academic-years
func (h *AcademicYearController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	var req dto.AcademicYearCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	req.AcademicYearCode = strings.TrimSpace(req.AcademicYearCode)
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	start := parseDate(req.AcademicYearStartDate)
	end := parseDate(req.AcademicYearEndDate)
	if !end.After(start) {
		return helper.JsonValidationError(c, map[string][]string{
			"academic_year_end_date": {"must be after start date"},
		})
	}

	m := model.AcademicYear{
		AcademicYearCode:      req.AcademicYearCode,
		AcademicYearStartDate: start,
		AcademicYearEndDate:   end,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, http.StatusConflict, "academic year code already exists")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "academic year created", dto.ToAcademicYearResponse(m))
}

// GET /academic-years
func (h *AcademicYearController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := h.DB.Model(&model.AcademicYear{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.AcademicYear
	if err := h.DB.Order("academic_year_start_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.AcademicYearResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToAcademicYearResponse(m))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

// PUT /academic-years/:id
func (h *AcademicYearController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var req dto.AcademicYearUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.AcademicYear
	if err := h.DB.First(&m, "academic_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "academic year not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if req.AcademicYearCode != nil {
		m.AcademicYearCode = strings.TrimSpace(*req.AcademicYearCode)
	}
	if req.AcademicYearStartDate != nil {
		m.AcademicYearStartDate = parseDate(*req.AcademicYearStartDate)
	}
	if req.AcademicYearEndDate != nil {
		m.AcademicYearEndDate = parseDate(*req.AcademicYearEndDate)
	}
	if !m.AcademicYearEndDate.After(m.AcademicYearStartDate) {
		return helper.JsonValidationError(c, map[string][]string{
			"academic_year_end_date": {"must be after start date"},
		})
	}

	if err := h.DB.Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, http.StatusConflict, "academic year code already exists")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "academic year updated", dto.ToAcademicYearResponse(m))
}

// PUT /academic-years/:id/activate
// Satu tahun ajaran berjalan pada satu waktu; aktivasi mematikan yang lain.
func (h *AcademicYearController) Activate(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.AcademicYear
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "academic_year_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.AcademicYear{}).
			Where("academic_year_is_active = true AND academic_year_id <> ?", id).
			Update("academic_year_is_active", false).Error; err != nil {
			return err
		}
		m.AcademicYearIsActive = true
		return tx.Save(&m).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "academic year not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, txErr.Error())
	}
	return helper.JsonUpdated(c, "academic year activated", dto.ToAcademicYearResponse(m))
}
