// file: internals/features/finance/fees/service/assignment_engine_test.go
package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/fees/model"
)

func asg(paid int64) model.StudentFeeAssignment {
	return model.StudentFeeAssignment{
		StudentFeeAssignmentID:         uuid.New(),
		StudentFeeAssignmentPaidAmount: paid,
	}
}

func TestStructureAppliesTo(t *testing.T) {
	yearA := uuid.New()
	yearB := uuid.New()
	grade1 := uuid.New()
	grade2 := uuid.New()

	tests := []struct {
		name         string
		scope        model.FeeStructureScope
		structGrade  *uuid.UUID
		structYear   uuid.UUID
		studentGrade uuid.UUID
		studentYear  uuid.UUID
		want         bool
	}{
		{name: "global matches any grade", scope: model.FeeScopeGlobal, structYear: yearA, studentGrade: grade2, studentYear: yearA, want: true},
		{name: "global wrong year", scope: model.FeeScopeGlobal, structYear: yearA, studentGrade: grade1, studentYear: yearB, want: false},
		{name: "grade exact match", scope: model.FeeScopeGrade, structGrade: &grade1, structYear: yearA, studentGrade: grade1, studentYear: yearA, want: true},
		{name: "grade mismatch", scope: model.FeeScopeGrade, structGrade: &grade1, structYear: yearA, studentGrade: grade2, studentYear: yearA, want: false},
		{name: "grade scope missing grade id", scope: model.FeeScopeGrade, structGrade: nil, structYear: yearA, studentGrade: grade1, studentYear: yearA, want: false},
		{name: "unknown scope never applies", scope: "division", structYear: yearA, studentGrade: grade1, studentYear: yearA, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StructureAppliesTo(tt.scope, tt.structGrade, tt.structYear, tt.studentGrade, tt.studentYear)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartitionCancellable(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		cancellable, skipped := PartitionCancellable(nil)
		assert.Empty(t, cancellable)
		assert.Empty(t, skipped)
	})

	t.Run("unpaid only", func(t *testing.T) {
		rows := []model.StudentFeeAssignment{asg(0), asg(0)}
		cancellable, skipped := PartitionCancellable(rows)
		assert.Len(t, cancellable, 2)
		assert.Empty(t, skipped)
	})

	t.Run("partially paid is never auto cancelled", func(t *testing.T) {
		rows := []model.StudentFeeAssignment{asg(0), asg(50_000), asg(0), asg(1)}
		cancellable, skipped := PartitionCancellable(rows)
		assert.Len(t, cancellable, 2)
		assert.Len(t, skipped, 2)
		for _, a := range cancellable {
			assert.Zero(t, a.StudentFeeAssignmentPaidAmount)
		}
		for _, a := range skipped {
			assert.Positive(t, a.StudentFeeAssignmentPaidAmount)
		}
	})
}

// Structure sintetis milik direct payment tidak boleh dijadikan tagihan
// massal: nominalnya ad-hoc dari satu pembayaran, bukan rule.
func TestMaterializeForStructureRejectsDirect(t *testing.T) {
	gdb, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "fee_structures"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_structure_id", "fee_structure_is_direct"}).
			AddRow(id.String(), true))

	_, err := MaterializeForStructure(gdb, id)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fee_structure_id", vErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}
