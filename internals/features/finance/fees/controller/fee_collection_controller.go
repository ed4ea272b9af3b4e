// file: internals/features/finance/fees/controller/fee_collection_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FeeCollectionController struct {
	DB *gorm.DB
}

// POST /fee-collections
func (h *FeeCollectionController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}
	collectorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.FeeCollectionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	col, asg, err := service.Collect(h.DB, req.ToInput(collectorID))
	if err != nil {
		return jsonServiceError(c, err)
	}

	out := dto.FeeCollectionCreateResponse{Collection: dto.ToFeeCollectionResponse(*col)}
	if asg != nil {
		a := dto.ToFeeAssignmentResponse(*asg, time.Now())
		out.Assignment = &a
	}
	return helper.JsonCreated(c, "payment collected", out)
}

// GET /fee-collections
// Filter eksplisit: student_id / parent_id / collector_id + rentang tanggal.
func (h *FeeCollectionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	f := service.CollectionFilter{Offset: p.Offset, Limit: p.Limit}
	if v := c.Query("student_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid student_id")
		}
		f.StudentID = &id
	}
	if v := c.Query("parent_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid parent_id")
		}
		f.ParentID = &id
	}
	if v := c.Query("collector_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid collector_id")
		}
		f.CollectorID = &id
	}
	var err error
	if f.DateFrom, err = parseDateQuery(c, "date_from"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid date_from (want YYYY-MM-DD)")
	}
	if f.DateTo, err = parseDateQuery(c, "date_to"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid date_to (want YYYY-MM-DD)")
	}

	rows, total, err := service.ListCollections(h.DB, f)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.ToFeeCollectionResponses(rows),
		helper.BuildPagination(total, p.Page, p.PerPage))
}

// GET /fee-collections/:id
func (h *FeeCollectionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.FeeCollection
	if err := h.DB.First(&m, "fee_collection_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "fee collection not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToFeeCollectionResponse(m))
}

// PUT /fee-collections/:id/verify
// One-way; verifikasi kedua kalinya = 200 no-op.
func (h *FeeCollectionController) Verify(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}
	verifierID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	col, err := service.VerifyCollection(h.DB, id, verifierID)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "collection verified", dto.ToFeeCollectionResponse(*col))
}

func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
