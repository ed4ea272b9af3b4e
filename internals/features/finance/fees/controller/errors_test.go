// file: internals/features/finance/fees/controller/errors_test.go
package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
)

func doServiceError(t *testing.T, err error) (int, helper.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return jsonServiceError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, reqErr)
	body, _ := io.ReadAll(resp.Body)

	var out helper.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestJsonServiceError(t *testing.T) {
	t.Run("not found -> 404", func(t *testing.T) {
		status, out := doServiceError(t, service.ErrNotFound)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", out.ErrorCode)
	})

	t.Run("validation -> 422 with field errors", func(t *testing.T) {
		status, out := doServiceError(t, &service.ValidationError{Field: "amount", Msg: "must be greater than 0"})
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, []string{"must be greater than 0"}, out.Errors["amount"])
	})

	t.Run("duplicate structure -> 409", func(t *testing.T) {
		status, out := doServiceError(t, &service.DuplicateStructureError{
			AcademicYearID: uuid.New(),
			CategoryID:     uuid.New(),
		})
		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, "CONFLICT", out.ErrorCode)
	})

	t.Run("active assignments -> 409 with force hint", func(t *testing.T) {
		status, out := doServiceError(t, &service.HasActiveAssignmentsError{Count: 12})
		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, true, out.Detail["can_force_delete"])
		assert.EqualValues(t, 12, out.Detail["assignment_count"])
	})

	t.Run("overpayment -> 400 with both amounts", func(t *testing.T) {
		status, out := doServiceError(t, &service.OverpaymentError{Pending: 150_000, Requested: 200_000})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.EqualValues(t, 150_000, out.Detail["pending_amount"])
		assert.EqualValues(t, 200_000, out.Detail["requested_amount"])
	})

	t.Run("cancelled assignment -> 400", func(t *testing.T) {
		status, _ := doServiceError(t, &service.CancelledAssignmentError{AssignmentID: uuid.New()})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("invariant violation -> generic 500", func(t *testing.T) {
		status, out := doServiceError(t, &service.InvariantViolationError{Op: "x", Detail: "y"})
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "internal error", out.Message)
	})

	t.Run("unknown error -> generic 500", func(t *testing.T) {
		status, out := doServiceError(t, errors.New("boom"))
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.NotContains(t, out.Message, "boom")
	})
}
