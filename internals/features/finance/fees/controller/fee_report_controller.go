// file: internals/features/finance/fees/controller/fee_report_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
)

// Proyeksi read-only untuk dashboard; hanya memakai query surface publik
// dari store-store di bawahnya.
type FeeReportController struct {
	DB *gorm.DB
}

// GET /fee-reports/dashboard
func (h *FeeReportController) Dashboard(c *fiber.Ctx) error {
	t, err := service.Totals(h.DB, time.Now())
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", t)
}

// GET /fee-reports/collection-summary?group_by=date|staff|category
func (h *FeeReportController) CollectionSummary(c *fiber.Ctx) error {
	groupBy := service.SummaryGroupBy(c.Query("group_by", string(service.SummaryByDate)))
	switch groupBy {
	case service.SummaryByDate, service.SummaryByStaff, service.SummaryByCategory:
	default:
		return helper.JsonError(c, http.StatusBadRequest, "group_by must be date, staff or category")
	}

	from, err := parseDateQuery(c, "date_from")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid date_from (want YYYY-MM-DD)")
	}
	to, err := parseDateQuery(c, "date_to")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid date_to (want YYYY-MM-DD)")
	}

	rows, err := service.CollectionSummary(h.DB, groupBy, from, to)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}
