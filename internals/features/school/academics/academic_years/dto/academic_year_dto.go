// file: internals/features/school/academics/academic_years/dto/academic_year_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/academic_years/model"
)

type AcademicYearCreateRequest struct {
	AcademicYearCode      string `json:"academic_year_code" validate:"required,min=4,max=20"`
	AcademicYearStartDate string `json:"academic_year_start_date" validate:"required,datetime=2006-01-02"`
	AcademicYearEndDate   string `json:"academic_year_end_date" validate:"required,datetime=2006-01-02"`
}

type AcademicYearUpdateRequest struct {
	AcademicYearCode      *string `json:"academic_year_code" validate:"omitempty,min=4,max=20"`
	AcademicYearStartDate *string `json:"academic_year_start_date" validate:"omitempty,datetime=2006-01-02"`
	AcademicYearEndDate   *string `json:"academic_year_end_date" validate:"omitempty,datetime=2006-01-02"`
}

type AcademicYearResponse struct {
	AcademicYearID        uuid.UUID `json:"academic_year_id"`
	AcademicYearCode      string    `json:"academic_year_code"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date"`
	AcademicYearIsActive  bool      `json:"academic_year_is_active"`
}

func ToAcademicYearResponse(m model.AcademicYear) AcademicYearResponse {
	return AcademicYearResponse{
		AcademicYearID:        m.AcademicYearID,
		AcademicYearCode:      m.AcademicYearCode,
		AcademicYearStartDate: m.AcademicYearStartDate,
		AcademicYearEndDate:   m.AcademicYearEndDate,
		AcademicYearIsActive:  m.AcademicYearIsActive,
	}
}
