// file: internals/features/finance/fees/model/fee_structure_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFeeStructureScopeGuard(t *testing.T) {
	gradeID := uuid.New()

	tests := []struct {
		name    string
		scope   FeeStructureScope
		gradeID *uuid.UUID
		wantErr bool
	}{
		{name: "global without grade", scope: FeeScopeGlobal, gradeID: nil, wantErr: false},
		{name: "global with grade rejected", scope: FeeScopeGlobal, gradeID: &gradeID, wantErr: true},
		{name: "grade with grade", scope: FeeScopeGrade, gradeID: &gradeID, wantErr: false},
		{name: "grade without grade rejected", scope: FeeScopeGrade, gradeID: nil, wantErr: true},
		{name: "unknown scope rejected", scope: "division", gradeID: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FeeStructure{
				FeeStructureScope:   tt.scope,
				FeeStructureGradeID: tt.gradeID,
			}
			err := m.BeforeSave(nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeeStructureIsGlobal(t *testing.T) {
	g := FeeStructure{FeeStructureScope: FeeScopeGlobal}
	assert.True(t, g.IsGlobal())

	gr := FeeStructure{FeeStructureScope: FeeScopeGrade}
	assert.False(t, gr.IsGlobal())
}

func TestResolvedSemester(t *testing.T) {
	sem2 := "Semester 2"
	empty := ""

	tests := []struct {
		name     string
		semester *string
		want     string
	}{
		{name: "explicit semester kept", semester: &sem2, want: "Semester 2"},
		{name: "nil falls back to default", semester: nil, want: DefaultSemester},
		{name: "empty string falls back to default", semester: &empty, want: DefaultSemester},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FeeStructure{FeeStructureSemester: tt.semester}
			assert.Equal(t, tt.want, m.ResolvedSemester())
		})
	}
}
