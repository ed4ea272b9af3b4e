// file: internals/features/finance/fees/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Taksonomi error engine fee. Controller memetakan tipe-tipe ini ke HTTP:
// validation/duplicate/blocked-delete/overpayment = 4xx yang bisa di-branch
// oleh caller, invariant violation = bug → log + 500 generik.

var ErrNotFound = errors.New("record not found")

// ValidationError: input salah bentuk/range, selalu bisa diperbaiki caller.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

// DuplicateStructureError: sudah ada structure hidup untuk
// (academic_year, grade-atau-global, category).
type DuplicateStructureError struct {
	AcademicYearID uuid.UUID
	GradeID        *uuid.UUID // nil = global
	CategoryID     uuid.UUID
}

func (e *DuplicateStructureError) Error() string {
	scope := "global"
	if e.GradeID != nil {
		scope = "grade " + e.GradeID.String()
	}
	return fmt.Sprintf("an active fee structure already exists for year %s, %s, category %s",
		e.AcademicYearID, scope, e.CategoryID)
}

// HasActiveAssignmentsError: delete structure terblokir; recoverable lewat
// force=true.
type HasActiveAssignmentsError struct {
	Count int64
}

func (e *HasActiveAssignmentsError) Error() string {
	return fmt.Sprintf("fee structure has %d active assignment(s); use force=true to cancel them", e.Count)
}

// OverpaymentError: pembayaran akan melebihi pending_amount.
type OverpaymentError struct {
	Pending   int64
	Requested int64
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %d exceeds pending amount %d", e.Requested, e.Pending)
}

// CancelledAssignmentError: assignment sudah dibatalkan, tidak menerima pembayaran.
type CancelledAssignmentError struct {
	AssignmentID uuid.UUID
}

func (e *CancelledAssignmentError) Error() string {
	return fmt.Sprintf("assignment %s is cancelled and cannot accept payments", e.AssignmentID)
}

// InvariantViolationError: keadaan yang seharusnya mustahil (mis. race
// concurrent-insert yang resolve secara aneh). Menandakan bug, bukan salah user.
type InvariantViolationError struct {
	Op     string
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s", e.Op, e.Detail)
}
