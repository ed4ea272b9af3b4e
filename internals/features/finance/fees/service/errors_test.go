// file: internals/features/finance/fees/service/errors_test.go
package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomyBranching(t *testing.T) {
	// Controller mem-branch pakai errors.As; pastikan wrapping tidak
	// memutus rantainya.
	gradeID := uuid.New()

	t.Run("duplicate structure, grade scope", func(t *testing.T) {
		base := &DuplicateStructureError{
			AcademicYearID: uuid.New(),
			GradeID:        &gradeID,
			CategoryID:     uuid.New(),
		}
		wrapped := fmt.Errorf("create structure: %w", base)

		var target *DuplicateStructureError
		assert.True(t, errors.As(wrapped, &target))
		assert.Contains(t, target.Error(), "grade "+gradeID.String())
	})

	t.Run("duplicate structure, global scope", func(t *testing.T) {
		e := &DuplicateStructureError{AcademicYearID: uuid.New(), CategoryID: uuid.New()}
		assert.Contains(t, e.Error(), "global")
	})

	t.Run("overpayment carries both amounts", func(t *testing.T) {
		e := &OverpaymentError{Pending: 150_000, Requested: 200_000}
		assert.Contains(t, e.Error(), "200000")
		assert.Contains(t, e.Error(), "150000")
	})

	t.Run("has active assignments suggests force", func(t *testing.T) {
		e := &HasActiveAssignmentsError{Count: 7}
		assert.Contains(t, e.Error(), "7 active")
		assert.Contains(t, e.Error(), "force=true")
	})

	t.Run("not found survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load: %w", ErrNotFound)
		assert.ErrorIs(t, wrapped, ErrNotFound)
	})
}
