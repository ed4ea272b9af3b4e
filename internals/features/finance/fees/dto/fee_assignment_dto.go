// file: internals/features/finance/fees/dto/fee_assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
)

type FeeAssignmentResponse struct {
	StudentFeeAssignmentID          uuid.UUID `json:"student_fee_assignment_id"`
	StudentFeeAssignmentStudentID   uuid.UUID `json:"student_fee_assignment_student_id"`
	StudentFeeAssignmentStructureID uuid.UUID `json:"student_fee_assignment_structure_id"`

	StudentFeeAssignmentSemester string `json:"student_fee_assignment_semester"`

	StudentFeeAssignmentTotalAmount   int64 `json:"student_fee_assignment_total_amount"`
	StudentFeeAssignmentPaidAmount    int64 `json:"student_fee_assignment_paid_amount"`
	StudentFeeAssignmentPendingAmount int64 `json:"student_fee_assignment_pending_amount"`

	StudentFeeAssignmentDueDate time.Time                 `json:"student_fee_assignment_due_date"`
	StudentFeeAssignmentStatus  model.FeeAssignmentStatus `json:"student_fee_assignment_status"`

	// Turunan, tidak tersimpan: due_date sudah lewat dan belum lunas.
	IsOverdue bool `json:"is_overdue"`

	StudentFeeAssignmentCancelReason *string    `json:"student_fee_assignment_cancel_reason,omitempty"`
	StudentFeeAssignmentCancelledAt  *time.Time `json:"student_fee_assignment_cancelled_at,omitempty"`
}

func ToFeeAssignmentResponse(m model.StudentFeeAssignment, now time.Time) FeeAssignmentResponse {
	return FeeAssignmentResponse{
		StudentFeeAssignmentID:            m.StudentFeeAssignmentID,
		StudentFeeAssignmentStudentID:     m.StudentFeeAssignmentStudentID,
		StudentFeeAssignmentStructureID:   m.StudentFeeAssignmentStructureID,
		StudentFeeAssignmentSemester:      m.StudentFeeAssignmentSemester,
		StudentFeeAssignmentTotalAmount:   m.StudentFeeAssignmentTotalAmount,
		StudentFeeAssignmentPaidAmount:    m.StudentFeeAssignmentPaidAmount,
		StudentFeeAssignmentPendingAmount: m.StudentFeeAssignmentPendingAmount,
		StudentFeeAssignmentDueDate:       m.StudentFeeAssignmentDueDate,
		StudentFeeAssignmentStatus:        m.StudentFeeAssignmentStatus,
		IsOverdue:                         m.IsOverdue(now),
		StudentFeeAssignmentCancelReason:  m.StudentFeeAssignmentCancelReason,
		StudentFeeAssignmentCancelledAt:   m.StudentFeeAssignmentCancelledAt,
	}
}

func ToFeeAssignmentResponses(rows []model.StudentFeeAssignment, now time.Time) []FeeAssignmentResponse {
	out := make([]FeeAssignmentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToFeeAssignmentResponse(m, now))
	}
	return out
}

// Materialisasi manual (re-run) per structure.
type MaterializeRequest struct {
	FeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`
}

type MaterializeResponse struct {
	FeeStructureID uuid.UUID `json:"fee_structure_id"`
	Inserted       int       `json:"inserted"`
	Skipped        int       `json:"skipped"`
}
