// file: internals/features/school/classes/grades/dto/grade_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/classes/grades/model"
)

type GradeCreateRequest struct {
	GradeName  string `json:"grade_name" validate:"required,min=1,max=60"`
	GradeLevel int16  `json:"grade_level" validate:"required,min=1,max=20"`
}

type GradeUpdateRequest struct {
	GradeName     *string `json:"grade_name" validate:"omitempty,min=1,max=60"`
	GradeLevel    *int16  `json:"grade_level" validate:"omitempty,min=1,max=20"`
	GradeIsActive *bool   `json:"grade_is_active"`
}

type GradeResponse struct {
	GradeID       uuid.UUID `json:"grade_id"`
	GradeName     string    `json:"grade_name"`
	GradeLevel    int16     `json:"grade_level"`
	GradeIsActive bool      `json:"grade_is_active"`
}

func ToGradeResponse(m model.Grade) GradeResponse {
	return GradeResponse{
		GradeID:       m.GradeID,
		GradeName:     m.GradeName,
		GradeLevel:    m.GradeLevel,
		GradeIsActive: m.GradeIsActive,
	}
}

type DivisionCreateRequest struct {
	DivisionGradeID uuid.UUID `json:"division_grade_id" validate:"required"`
	DivisionName    string    `json:"division_name" validate:"required,min=1,max=30"`
}

type DivisionResponse struct {
	DivisionID      uuid.UUID `json:"division_id"`
	DivisionGradeID uuid.UUID `json:"division_grade_id"`
	DivisionName    string    `json:"division_name"`
}

func ToDivisionResponse(m model.Division) DivisionResponse {
	return DivisionResponse{
		DivisionID:      m.DivisionID,
		DivisionGradeID: m.DivisionGradeID,
		DivisionName:    m.DivisionName,
	}
}
