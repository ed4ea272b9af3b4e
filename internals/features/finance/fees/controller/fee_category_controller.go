// file: internals/features/finance/fees/controller/fee_category_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FeeCategoryController struct {
	DB *gorm.DB
}

// POST /fee-categories
func (h *FeeCategoryController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	var req dto.FeeCategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	req.FeeCategoryName = strings.TrimSpace(req.FeeCategoryName)
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := model.FeeCategory{
		FeeCategoryName:        req.FeeCategoryName,
		FeeCategoryDescription: req.FeeCategoryDescription,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, http.StatusConflict, "category name already exists")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee category created", dto.ToFeeCategoryResponse(m))
}

// GET /fee-categories
func (h *FeeCategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := h.DB.Model(&model.FeeCategory{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeCategory
	if err := h.DB.Order("fee_category_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.FeeCategoryResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToFeeCategoryResponse(m))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

// PUT /fee-categories/:id
func (h *FeeCategoryController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var req dto.FeeCategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.FeeCategory
	if err := h.DB.First(&m, "fee_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "fee category not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// Kategori yang sudah dipakai structure ber-pembayaran dianggap beku:
	// nama tidak boleh diganti supaya kwitansi historis tetap konsisten.
	if req.FeeCategoryName != nil && strings.TrimSpace(*req.FeeCategoryName) != m.FeeCategoryName {
		var paidCount int64
		if err := h.DB.Table("fee_collections").
			Joins(`JOIN student_fee_assignments sfa
				ON sfa.student_fee_assignment_id = fee_collections.fee_collection_assignment_id`).
			Joins(`JOIN fee_structures fs
				ON fs.fee_structure_id = sfa.student_fee_assignment_structure_id`).
			Where("fs.fee_structure_category_id = ?", id).
			Count(&paidCount).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if paidCount > 0 {
			return helper.JsonError(c, http.StatusConflict, "category is referenced by collected fees and cannot be renamed")
		}
		m.FeeCategoryName = strings.TrimSpace(*req.FeeCategoryName)
	}
	if req.FeeCategoryDescription != nil {
		m.FeeCategoryDescription = req.FeeCategoryDescription
	}

	if err := h.DB.Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, http.StatusConflict, "category name already exists")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee category updated", dto.ToFeeCategoryResponse(m))
}

// DELETE /fee-categories/:id
func (h *FeeCategoryController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var refCount int64
	if err := h.DB.Model(&model.FeeStructure{}).
		Where("fee_structure_category_id = ?", id).
		Count(&refCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if refCount > 0 {
		return helper.JsonErrorWithDetail(c, http.StatusConflict,
			"category is referenced by fee structures", fiber.Map{"structure_count": refCount})
	}

	res := h.DB.Delete(&model.FeeCategory{}, "fee_category_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "fee category not found")
	}
	return helper.JsonDeleted(c, "fee category deleted", fiber.Map{"fee_category_id": id})
}
