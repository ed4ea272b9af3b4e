// file: internals/features/finance/fees/dto/fee_collection_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	helper "schoolku_backend/internals/helpers"
)

func TestFeeCollectionCreateRequestValidation(t *testing.T) {
	asgID := uuid.New()

	t.Run("assignment path valid", func(t *testing.T) {
		req := FeeCollectionCreateRequest{AssignmentID: &asgID, Amount: 250_000}
		assert.Nil(t, helper.ValidateStruct(req))
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		req := FeeCollectionCreateRequest{AssignmentID: &asgID, Amount: 0}
		errs := helper.ValidateStruct(req)
		assert.Contains(t, errs, "amount")
	})

	t.Run("unknown payment method rejected", func(t *testing.T) {
		req := FeeCollectionCreateRequest{AssignmentID: &asgID, Amount: 100, PaymentMethod: "crypto"}
		errs := helper.ValidateStruct(req)
		assert.Contains(t, errs, "payment_method")
	})

	t.Run("known payment methods pass", func(t *testing.T) {
		for _, m := range []string{"cash", "bank_transfer", "cheque", "qris", "other"} {
			req := FeeCollectionCreateRequest{AssignmentID: &asgID, Amount: 100, PaymentMethod: m}
			assert.Nil(t, helper.ValidateStruct(req), m)
		}
	})
}

func TestFeeCollectionCreateRequestToInput(t *testing.T) {
	collector := uuid.New()
	studentID := uuid.New()
	categoryID := uuid.New()

	t.Run("assignment path", func(t *testing.T) {
		asgID := uuid.New()
		in := FeeCollectionCreateRequest{
			AssignmentID:  &asgID,
			Amount:        250_000,
			PaymentMethod: "cash",
		}.ToInput(collector)

		assert.Equal(t, &asgID, in.AssignmentID)
		assert.False(t, in.IsDirectPayment)
		assert.Equal(t, collector, in.CollectedBy)
		assert.Equal(t, uuid.Nil, in.StudentID)
	})

	t.Run("direct path", func(t *testing.T) {
		in := FeeCollectionCreateRequest{
			IsDirectPayment: true,
			StudentID:       &studentID,
			FeeCategoryID:   &categoryID,
			Amount:          75_000,
		}.ToInput(collector)

		assert.True(t, in.IsDirectPayment)
		assert.Equal(t, studentID, in.StudentID)
		assert.Equal(t, categoryID, in.CategoryID)
		assert.Nil(t, in.AssignmentID)
	})
}
