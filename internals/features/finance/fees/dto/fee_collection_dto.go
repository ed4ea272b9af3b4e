// file: internals/features/finance/fees/dto/fee_collection_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
)

// Satu endpoint, dua jalur: assignment_id ATAU is_direct_payment.
type FeeCollectionCreateRequest struct {
	AssignmentID *uuid.UUID `json:"assignment_id,omitempty"`

	IsDirectPayment bool       `json:"is_direct_payment"`
	StudentID       *uuid.UUID `json:"student_id,omitempty"`
	FeeCategoryID   *uuid.UUID `json:"fee_category_id,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Description     *string    `json:"description,omitempty" validate:"omitempty,max=500"`

	Amount        int64   `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer cheque qris other"`
	Reference     *string `json:"reference,omitempty" validate:"omitempty,max=120"`
}

func (r FeeCollectionCreateRequest) ToInput(collectedBy uuid.UUID) service.CollectInput {
	in := service.CollectInput{
		AssignmentID:    r.AssignmentID,
		IsDirectPayment: r.IsDirectPayment,
		DueDate:         r.DueDate,
		Description:     r.Description,
		Amount:          r.Amount,
		PaymentMethod:   r.PaymentMethod,
		Reference:       r.Reference,
		CollectedBy:     collectedBy,
	}
	if r.StudentID != nil {
		in.StudentID = *r.StudentID
	}
	if r.FeeCategoryID != nil {
		in.CategoryID = *r.FeeCategoryID
	}
	return in
}

type FeeCollectionResponse struct {
	FeeCollectionID            uuid.UUID  `json:"fee_collection_id"`
	FeeCollectionStudentID     uuid.UUID  `json:"fee_collection_student_id"`
	FeeCollectionAssignmentID  *uuid.UUID `json:"fee_collection_assignment_id,omitempty"`
	FeeCollectionAmount        int64      `json:"fee_collection_amount"`
	FeeCollectionPaymentMethod string     `json:"fee_collection_payment_method"`
	FeeCollectionReference     *string    `json:"fee_collection_reference,omitempty"`
	FeeCollectionReceiptNumber string     `json:"fee_collection_receipt_number"`
	FeeCollectionCollectedBy   uuid.UUID  `json:"fee_collection_collected_by"`
	FeeCollectionDate          time.Time  `json:"fee_collection_date"`
	FeeCollectionIsVerified    bool       `json:"fee_collection_is_verified"`
	FeeCollectionVerifiedBy    *uuid.UUID `json:"fee_collection_verified_by,omitempty"`
	FeeCollectionVerifiedAt    *time.Time `json:"fee_collection_verified_at,omitempty"`
	FeeCollectionNote          *string    `json:"fee_collection_note,omitempty"`
}

func ToFeeCollectionResponse(m model.FeeCollection) FeeCollectionResponse {
	return FeeCollectionResponse{
		FeeCollectionID:            m.FeeCollectionID,
		FeeCollectionStudentID:     m.FeeCollectionStudentID,
		FeeCollectionAssignmentID:  m.FeeCollectionAssignmentID,
		FeeCollectionAmount:        m.FeeCollectionAmount,
		FeeCollectionPaymentMethod: m.FeeCollectionPaymentMethod,
		FeeCollectionReference:     m.FeeCollectionReference,
		FeeCollectionReceiptNumber: m.FeeCollectionReceiptNumber,
		FeeCollectionCollectedBy:   m.FeeCollectionCollectedBy,
		FeeCollectionDate:          m.FeeCollectionDate,
		FeeCollectionIsVerified:    m.FeeCollectionIsVerified,
		FeeCollectionVerifiedBy:    m.FeeCollectionVerifiedBy,
		FeeCollectionVerifiedAt:    m.FeeCollectionVerifiedAt,
		FeeCollectionNote:          m.FeeCollectionNote,
	}
}

func ToFeeCollectionResponses(rows []model.FeeCollection) []FeeCollectionResponse {
	out := make([]FeeCollectionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToFeeCollectionResponse(m))
	}
	return out
}

// 201: collection + saldo assignment terbaru.
type FeeCollectionCreateResponse struct {
	Collection FeeCollectionResponse  `json:"collection"`
	Assignment *FeeAssignmentResponse `json:"assignment,omitempty"`
}
