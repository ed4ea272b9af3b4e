// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"

	feeService "schoolku_backend/internals/features/finance/fees/service"
	"schoolku_backend/internals/features/school/students/model"
)

type StudentCreateRequest struct {
	StudentAdmissionNumber string     `json:"student_admission_number" validate:"required,min=3,max=30"`
	StudentFullName        string     `json:"student_full_name" validate:"required,min=3,max=120"`
	StudentAcademicYearID  uuid.UUID  `json:"student_academic_year_id" validate:"required"`
	StudentGradeID         uuid.UUID  `json:"student_grade_id" validate:"required"`
	StudentDivisionID      *uuid.UUID `json:"student_division_id"`
}

type StudentUpdateRequest struct {
	StudentFullName   *string    `json:"student_full_name" validate:"omitempty,min=3,max=120"`
	StudentDivisionID *uuid.UUID `json:"student_division_id"`
}

// StudentTransferRequest memindahkan siswa ke penempatan baru (naik kelas,
// pindah rombel, atau ke tahun ajaran berikutnya).
type StudentTransferRequest struct {
	StudentAcademicYearID uuid.UUID  `json:"student_academic_year_id" validate:"required"`
	StudentGradeID        uuid.UUID  `json:"student_grade_id" validate:"required"`
	StudentDivisionID     *uuid.UUID `json:"student_division_id"`
}

type StudentResponse struct {
	StudentID              uuid.UUID  `json:"student_id"`
	StudentAdmissionNumber string     `json:"student_admission_number"`
	StudentFullName        string     `json:"student_full_name"`
	StudentAcademicYearID  uuid.UUID  `json:"student_academic_year_id"`
	StudentGradeID         uuid.UUID  `json:"student_grade_id"`
	StudentDivisionID      *uuid.UUID `json:"student_division_id,omitempty"`
	StudentIsActive        bool       `json:"student_is_active"`
}

func ToStudentResponse(m model.Student) StudentResponse {
	return StudentResponse{
		StudentID:              m.StudentID,
		StudentAdmissionNumber: m.StudentAdmissionNumber,
		StudentFullName:        m.StudentFullName,
		StudentAcademicYearID:  m.StudentAcademicYearID,
		StudentGradeID:         m.StudentGradeID,
		StudentDivisionID:      m.StudentDivisionID,
		StudentIsActive:        m.StudentIsActive,
	}
}

// StudentCreateResponse membawa hasil materialisasi tagihan wajib agar staff
// langsung melihat berapa kewajiban yang terbentuk.
type StudentCreateResponse struct {
	Student      StudentResponse              `json:"student"`
	Materialized feeService.MaterializeResult `json:"materialized"`
}

type StudentTransferResponse struct {
	Student   StudentResponse            `json:"student"`
	Reconcile feeService.ReconcileResult `json:"reconcile"`
}

type GuardianLinkRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Relation string    `json:"relation" validate:"required,oneof=father mother guardian"`
}

type GuardianResponse struct {
	StudentGuardianID uuid.UUID `json:"student_guardian_id"`
	StudentID         uuid.UUID `json:"student_id"`
	UserID            uuid.UUID `json:"user_id"`
	Relation          string    `json:"relation"`
}

func ToGuardianResponse(m model.StudentGuardian) GuardianResponse {
	return GuardianResponse{
		StudentGuardianID: m.StudentGuardianID,
		StudentID:         m.StudentGuardianStudentID,
		UserID:            m.StudentGuardianUserID,
		Relation:          m.StudentGuardianRelation,
	}
}
