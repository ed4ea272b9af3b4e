// file: internals/features/finance/fees/dto/fee_structure_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/features/finance/fees/model"
	helper "schoolku_backend/internals/helpers"
)

func validStructureRequest() FeeStructureRequest {
	return FeeStructureRequest{
		FeeStructureAcademicYearID: uuid.New(),
		FeeStructureCategoryID:     uuid.New(),
		FeeStructureAmount:         500_000,
		FeeStructureDueDate:        time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestFeeStructureRequestValidation(t *testing.T) {
	t.Run("minimal valid", func(t *testing.T) {
		assert.Nil(t, helper.ValidateStruct(validStructureRequest()))
	})

	t.Run("amount must be positive", func(t *testing.T) {
		req := validStructureRequest()
		req.FeeStructureAmount = 0
		errs := helper.ValidateStruct(req)
		assert.Contains(t, errs, "fee_structure_amount")
	})

	t.Run("negative late fee rejected", func(t *testing.T) {
		req := validStructureRequest()
		req.FeeStructureLateFeeAmount = -1
		errs := helper.ValidateStruct(req)
		assert.Contains(t, errs, "fee_structure_late_fee_amount")
	})

	t.Run("max installments below 2 rejected", func(t *testing.T) {
		one := int16(1)
		req := validStructureRequest()
		req.FeeStructureInstallmentsAllowed = true
		req.FeeStructureMaxInstallments = &one
		errs := helper.ValidateStruct(req)
		assert.Contains(t, errs, "fee_structure_max_installments")
	})
}

func TestFeeStructureRequestToInput(t *testing.T) {
	gradeID := uuid.New()
	sem := "Semester 2"
	req := validStructureRequest()
	req.FeeStructureGradeID = &gradeID
	req.FeeStructureSemester = &sem
	req.FeeStructureIsMandatory = true

	in := req.ToInput()
	assert.Equal(t, req.FeeStructureAcademicYearID, in.AcademicYearID)
	assert.Equal(t, &gradeID, in.GradeID)
	assert.Equal(t, req.FeeStructureAmount, in.Amount)
	assert.True(t, in.IsMandatory)
	assert.Equal(t, &sem, in.Semester)
}

func TestToFeeStructureResponseScope(t *testing.T) {
	gradeID := uuid.New()

	global := model.FeeStructure{FeeStructureScope: model.FeeScopeGlobal}
	assert.True(t, ToFeeStructureResponse(global).IsGlobal)

	graded := model.FeeStructure{
		FeeStructureScope:   model.FeeScopeGrade,
		FeeStructureGradeID: &gradeID,
	}
	resp := ToFeeStructureResponse(graded)
	assert.False(t, resp.IsGlobal)
	assert.Equal(t, &gradeID, resp.FeeStructureGradeID)
}
