// file: internals/features/finance/fees/model/student_fee_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status assignment (stored)
// =========================================================
// "overdue" sengaja TIDAK disimpan; dihitung saat baca dari due_date vs now
// (lihat IsOverdue) supaya tidak ada job yang harus menulis ulang status.

type FeeAssignmentStatus string

const (
	FeeAssignmentStatusPending   FeeAssignmentStatus = "pending"
	FeeAssignmentStatusPartial   FeeAssignmentStatus = "partial"
	FeeAssignmentStatusPaid      FeeAssignmentStatus = "paid"
	FeeAssignmentStatusCancelled FeeAssignmentStatus = "cancelled"
)

// =========================================================
// MODEL student_fee_assignments
// =========================================================

type StudentFeeAssignment struct {
	// PK
	StudentFeeAssignmentID uuid.UUID `gorm:"column:student_fee_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_fee_assignment_id"`

	// FK
	StudentFeeAssignmentStudentID   uuid.UUID `gorm:"column:student_fee_assignment_student_id;type:uuid;not null;index:idx_sfa_student" json:"student_fee_assignment_student_id"`
	StudentFeeAssignmentStructureID uuid.UUID `gorm:"column:student_fee_assignment_structure_id;type:uuid;not null;index:idx_sfa_structure" json:"student_fee_assignment_structure_id"`

	// Semester selalu terisi; structure semester-agnostic jatuh ke DefaultSemester.
	StudentFeeAssignmentSemester string `gorm:"column:student_fee_assignment_semester;type:varchar(30);not null" json:"student_fee_assignment_semester"`

	// Saldo (minor units). total disalin dari structure saat materialisasi dan
	// tidak ikut berubah kalau structure di-update belakangan.
	StudentFeeAssignmentTotalAmount   int64 `gorm:"column:student_fee_assignment_total_amount;type:bigint;not null;check:student_fee_assignment_total_amount > 0" json:"student_fee_assignment_total_amount"`
	StudentFeeAssignmentPaidAmount    int64 `gorm:"column:student_fee_assignment_paid_amount;type:bigint;not null;default:0;check:student_fee_assignment_paid_amount >= 0" json:"student_fee_assignment_paid_amount"`
	StudentFeeAssignmentPendingAmount int64 `gorm:"column:student_fee_assignment_pending_amount;type:bigint;not null;check:student_fee_assignment_pending_amount >= 0" json:"student_fee_assignment_pending_amount"`

	StudentFeeAssignmentDueDate time.Time           `gorm:"column:student_fee_assignment_due_date;type:date;not null" json:"student_fee_assignment_due_date"`
	StudentFeeAssignmentStatus  FeeAssignmentStatus `gorm:"column:student_fee_assignment_status;type:varchar(12);not null;default:'pending';index:idx_sfa_status" json:"student_fee_assignment_status"`

	// Jejak pembatalan (cancel administratif)
	StudentFeeAssignmentCancelReason *string    `gorm:"column:student_fee_assignment_cancel_reason;type:text" json:"student_fee_assignment_cancel_reason,omitempty"`
	StudentFeeAssignmentCancelledAt  *time.Time `gorm:"column:student_fee_assignment_cancelled_at;type:timestamptz" json:"student_fee_assignment_cancelled_at,omitempty"`

	// Timestamps
	StudentFeeAssignmentCreatedAt time.Time      `gorm:"column:student_fee_assignment_created_at;type:timestamptz;not null;autoCreateTime" json:"student_fee_assignment_created_at"`
	StudentFeeAssignmentUpdatedAt time.Time      `gorm:"column:student_fee_assignment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_fee_assignment_updated_at"`
	StudentFeeAssignmentDeletedAt gorm.DeletedAt `gorm:"column:student_fee_assignment_deleted_at;type:timestamptz;index" json:"-"`

	// Catatan:
	// - Unique index parsial (student_id, structure_id)
	//   WHERE status <> 'cancelled' AND deleted_at IS NULL dibuat di migrate.go.
	//   ON CONFLICT DO NOTHING pada index itulah yang membuat materialisasi
	//   idempotent by construction, bukan locking.
}

func (StudentFeeAssignment) TableName() string { return "student_fee_assignments" }

func (m *StudentFeeAssignment) BeforeCreate(tx *gorm.DB) error {
	if m.StudentFeeAssignmentID == uuid.Nil {
		m.StudentFeeAssignmentID = uuid.New()
	}
	return nil
}

// IsOverdue: turunan, bukan state tersimpan. Hanya pending/partial yang bisa
// overdue, dan baru setelah tanggal kalender di lokasi now melewati due date.
// Perbandingan pakai civil date, bukan potongan 24 jam UTC, supaya deployment
// WIB tidak menganggap tagihan telat tujuh jam lebih awal.
func (m *StudentFeeAssignment) IsOverdue(now time.Time) bool {
	switch m.StudentFeeAssignmentStatus {
	case FeeAssignmentStatusPending, FeeAssignmentStatusPartial:
	default:
		return false
	}
	ny, nm, nd := now.Date()
	dy, dm, dd := m.StudentFeeAssignmentDueDate.In(now.Location()).Date()
	nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	dueDay := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return nowDay.After(dueDay)
}
