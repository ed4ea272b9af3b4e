// file: internals/features/finance/fees/model/fee_collection_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	FeePaymentMethodCash         = "cash"
	FeePaymentMethodBankTransfer = "bank_transfer"
	FeePaymentMethodCheque       = "cheque"
	FeePaymentMethodQRIS         = "qris"
	FeePaymentMethodOther        = "other"
)

/* ===================== Model ===================== */

type FeeCollection struct {
	FeeCollectionID uuid.UUID `gorm:"column:fee_collection_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_collection_id"`

	FeeCollectionStudentID uuid.UUID `gorm:"column:fee_collection_student_id;type:uuid;not null;index:idx_fee_collections_student" json:"fee_collection_student_id"`

	// NULL hanya secara historis; direct payment tetap mensintesis assignment
	// sendiri sehingga baris baru selalu punya assignment.
	FeeCollectionAssignmentID *uuid.UUID `gorm:"column:fee_collection_assignment_id;type:uuid;index:idx_fee_collections_assignment" json:"fee_collection_assignment_id,omitempty"`

	// Nominal (minor units)
	FeeCollectionAmount int64 `gorm:"column:fee_collection_amount;type:bigint;not null;check:fee_collection_amount > 0" json:"fee_collection_amount"`

	FeeCollectionPaymentMethod string  `gorm:"column:fee_collection_payment_method;type:varchar(20);not null;default:'cash'" json:"fee_collection_payment_method"`
	FeeCollectionReference     *string `gorm:"column:fee_collection_reference;type:varchar(120)" json:"fee_collection_reference,omitempty"`

	// Nomor kwitansi; unique constraint di kolom ini + retry-on-collision
	// (bukan counter read-then-write) yang menjamin tidak pernah dobel.
	FeeCollectionReceiptNumber string `gorm:"column:fee_collection_receipt_number;type:varchar(30);not null;uniqueIndex:uq_fee_collections_receipt" json:"fee_collection_receipt_number"`

	FeeCollectionCollectedBy uuid.UUID `gorm:"column:fee_collection_collected_by;type:uuid;not null;index:idx_fee_collections_collector" json:"fee_collection_collected_by"`
	FeeCollectionDate        time.Time `gorm:"column:fee_collection_date;type:timestamptz;not null;index:idx_fee_collections_date" json:"fee_collection_date"`

	// Verifikasi post-hoc (one-way)
	FeeCollectionIsVerified bool       `gorm:"column:fee_collection_is_verified;not null;default:false" json:"fee_collection_is_verified"`
	FeeCollectionVerifiedBy *uuid.UUID `gorm:"column:fee_collection_verified_by;type:uuid" json:"fee_collection_verified_by,omitempty"`
	FeeCollectionVerifiedAt *time.Time `gorm:"column:fee_collection_verified_at;type:timestamptz" json:"fee_collection_verified_at,omitempty"`

	FeeCollectionNote *string `gorm:"column:fee_collection_note;type:text" json:"fee_collection_note,omitempty"`

	// Timestamps
	FeeCollectionCreatedAt time.Time      `gorm:"column:fee_collection_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_collection_created_at"`
	FeeCollectionUpdatedAt time.Time      `gorm:"column:fee_collection_updated_at;type:timestamptz;not null;autoUpdateTime" json:"fee_collection_updated_at"`
	FeeCollectionDeletedAt gorm.DeletedAt `gorm:"column:fee_collection_deleted_at;type:timestamptz;index" json:"-"`
}

func (FeeCollection) TableName() string { return "fee_collections" }

func (m *FeeCollection) BeforeCreate(tx *gorm.DB) error {
	if m.FeeCollectionID == uuid.Nil {
		m.FeeCollectionID = uuid.New()
	}
	if m.FeeCollectionDate.IsZero() {
		m.FeeCollectionDate = time.Now()
	}
	return nil
}
