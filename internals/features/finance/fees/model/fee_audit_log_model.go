// file: internals/features/finance/fees/model/fee_audit_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Aksi yang dicatat oleh engine (bukan log request umum).
const (
	FeeAuditActionStructureForceDeleted = "structure_force_deleted"
	FeeAuditActionAssignmentsCancelled  = "assignments_cancelled"
	FeeAuditActionCollectionVerified    = "collection_verified"
	FeeAuditActionDirectPayment         = "direct_payment"
)

type FeeAuditLog struct {
	FeeAuditLogID uuid.UUID `gorm:"column:fee_audit_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_audit_log_id"`

	FeeAuditLogActorUserID uuid.UUID `gorm:"column:fee_audit_log_actor_user_id;type:uuid;not null;index" json:"fee_audit_log_actor_user_id"`
	FeeAuditLogAction      string    `gorm:"column:fee_audit_log_action;type:varchar(40);not null;index" json:"fee_audit_log_action"`

	FeeAuditLogEntityType string    `gorm:"column:fee_audit_log_entity_type;type:varchar(40);not null" json:"fee_audit_log_entity_type"`
	FeeAuditLogEntityID   uuid.UUID `gorm:"column:fee_audit_log_entity_id;type:uuid;not null;index" json:"fee_audit_log_entity_id"`

	FeeAuditLogDetail datatypes.JSONMap `gorm:"column:fee_audit_log_detail;type:jsonb" json:"fee_audit_log_detail,omitempty"`

	FeeAuditLogCreatedAt time.Time `gorm:"column:fee_audit_log_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_audit_log_created_at"`
}

func (FeeAuditLog) TableName() string { return "fee_audit_logs" }

func (m *FeeAuditLog) BeforeCreate(tx *gorm.DB) error {
	if m.FeeAuditLogID == uuid.Nil {
		m.FeeAuditLogID = uuid.New()
	}
	return nil
}
