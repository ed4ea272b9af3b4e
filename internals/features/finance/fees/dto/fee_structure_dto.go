// file: internals/features/finance/fees/dto/fee_structure_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
)

// Create & Update memakai bentuk yang sama; update selalu full replace
// (bukan patch parsial) supaya validasi scope tetap utuh.
type FeeStructureRequest struct {
	FeeStructureAcademicYearID uuid.UUID  `json:"fee_structure_academic_year_id" validate:"required"`
	FeeStructureGradeID        *uuid.UUID `json:"fee_structure_grade_id,omitempty"` // nil = global
	FeeStructureCategoryID     uuid.UUID  `json:"fee_structure_category_id" validate:"required"`

	FeeStructureAmount      int64 `json:"fee_structure_amount" validate:"required,gt=0"`
	FeeStructureIsMandatory bool  `json:"fee_structure_is_mandatory"`

	FeeStructureSemester *string   `json:"fee_structure_semester,omitempty" validate:"omitempty,max=30"`
	FeeStructureDueDate  time.Time `json:"fee_structure_due_date" validate:"required"`

	FeeStructureLateFeeAmount       int64  `json:"fee_structure_late_fee_amount" validate:"gte=0"`
	FeeStructureLateFeeGraceDays    int16  `json:"fee_structure_late_fee_grace_days" validate:"gte=0"`
	FeeStructureInstallmentsAllowed bool   `json:"fee_structure_installments_allowed"`
	FeeStructureMaxInstallments     *int16 `json:"fee_structure_max_installments,omitempty" validate:"omitempty,min=2,max=12"`
}

func (r FeeStructureRequest) ToInput() service.StructureInput {
	return service.StructureInput{
		AcademicYearID:      r.FeeStructureAcademicYearID,
		GradeID:             r.FeeStructureGradeID,
		CategoryID:          r.FeeStructureCategoryID,
		Amount:              r.FeeStructureAmount,
		IsMandatory:         r.FeeStructureIsMandatory,
		Semester:            r.FeeStructureSemester,
		DueDate:             r.FeeStructureDueDate,
		LateFeeAmount:       r.FeeStructureLateFeeAmount,
		LateFeeGraceDays:    r.FeeStructureLateFeeGraceDays,
		InstallmentsAllowed: r.FeeStructureInstallmentsAllowed,
		MaxInstallments:     r.FeeStructureMaxInstallments,
	}
}

type FeeStructureResponse struct {
	FeeStructureID             uuid.UUID               `json:"fee_structure_id"`
	FeeStructureAcademicYearID uuid.UUID               `json:"fee_structure_academic_year_id"`
	FeeStructureScope          model.FeeStructureScope `json:"fee_structure_scope"`
	FeeStructureGradeID        *uuid.UUID              `json:"fee_structure_grade_id,omitempty"`
	FeeStructureCategoryID     uuid.UUID               `json:"fee_structure_category_id"`

	FeeStructureAmount      int64   `json:"fee_structure_amount"`
	FeeStructureIsMandatory bool    `json:"fee_structure_is_mandatory"`
	FeeStructureSemester    *string `json:"fee_structure_semester,omitempty"`

	FeeStructureDueDate time.Time `json:"fee_structure_due_date"`

	FeeStructureLateFeeAmount       int64  `json:"fee_structure_late_fee_amount"`
	FeeStructureLateFeeGraceDays    int16  `json:"fee_structure_late_fee_grace_days"`
	FeeStructureInstallmentsAllowed bool   `json:"fee_structure_installments_allowed"`
	FeeStructureMaxInstallments     *int16 `json:"fee_structure_max_installments,omitempty"`

	IsGlobal bool `json:"is_global"`

	FeeStructureCreatedAt time.Time `json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time `json:"fee_structure_updated_at"`
}

func ToFeeStructureResponse(m model.FeeStructure) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:                  m.FeeStructureID,
		FeeStructureAcademicYearID:      m.FeeStructureAcademicYearID,
		FeeStructureScope:               m.FeeStructureScope,
		FeeStructureGradeID:             m.FeeStructureGradeID,
		FeeStructureCategoryID:          m.FeeStructureCategoryID,
		FeeStructureAmount:              m.FeeStructureAmount,
		FeeStructureIsMandatory:         m.FeeStructureIsMandatory,
		FeeStructureSemester:            m.FeeStructureSemester,
		FeeStructureDueDate:             m.FeeStructureDueDate,
		FeeStructureLateFeeAmount:       m.FeeStructureLateFeeAmount,
		FeeStructureLateFeeGraceDays:    m.FeeStructureLateFeeGraceDays,
		FeeStructureInstallmentsAllowed: m.FeeStructureInstallmentsAllowed,
		FeeStructureMaxInstallments:     m.FeeStructureMaxInstallments,
		IsGlobal:                        m.IsGlobal(),
		FeeStructureCreatedAt:           m.FeeStructureCreatedAt,
		FeeStructureUpdatedAt:           m.FeeStructureUpdatedAt,
	}
}

// CreateStructure mengembalikan structure + hasil materialisasinya sekaligus.
type FeeStructureCreateResponse struct {
	Structure FeeStructureResponse `json:"structure"`
	Inserted  int                  `json:"assignments_inserted"`
	Skipped   int                  `json:"assignments_skipped"`
}

// Jawaban resolve: structure + status assignment siswa ybs (kalau ada).
type ApplicableStructureResponse struct {
	FeeStructureResponse
	AssignmentStatus *model.FeeAssignmentStatus `json:"assignment_status,omitempty"`
}
