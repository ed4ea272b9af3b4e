// file: internals/features/finance/fees/controller/errors.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	helper "schoolku_backend/internals/helpers"

	"schoolku_backend/internals/features/finance/fees/service"
)

// jsonServiceError memetakan taksonomi error service ke HTTP.
// Error yang bisa di-branch caller membawa payload terstruktur.
func jsonServiceError(c *fiber.Ctx, err error) error {
	var (
		vErr   *service.ValidationError
		dupErr *service.DuplicateStructureError
		actErr *service.HasActiveAssignmentsError
		ovpErr *service.OverpaymentError
		cclErr *service.CancelledAssignmentError
		invErr *service.InvariantViolationError
	)

	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, http.StatusNotFound, "not found")

	case errors.As(err, &vErr):
		return helper.JsonValidationError(c, map[string][]string{vErr.Field: {vErr.Msg}})

	case errors.As(err, &dupErr):
		return helper.JsonError(c, http.StatusConflict, dupErr.Error())

	case errors.As(err, &actErr):
		return helper.JsonErrorWithDetail(c, http.StatusConflict, actErr.Error(), fiber.Map{
			"can_force_delete": true,
			"assignment_count": actErr.Count,
		})

	case errors.As(err, &ovpErr):
		return helper.JsonErrorWithDetail(c, http.StatusBadRequest, ovpErr.Error(), fiber.Map{
			"pending_amount":   ovpErr.Pending,
			"requested_amount": ovpErr.Requested,
		})

	case errors.As(err, &cclErr):
		return helper.JsonError(c, http.StatusBadRequest, cclErr.Error())

	case errors.As(err, &invErr):
		// bug, bukan salah user: log detail, balas generik
		log.Printf("[ERROR] %v", invErr)
		return helper.JsonError(c, http.StatusInternalServerError, "internal error")

	default:
		log.Printf("[ERROR] fee engine: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "internal error")
	}
}
