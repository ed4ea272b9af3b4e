// file: internals/features/finance/fees/model/fee_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeCategory adalah data referensi jenis biaya (Tuition, Transport, Library, ...).
type FeeCategory struct {
	FeeCategoryID uuid.UUID `gorm:"column:fee_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_category_id"`

	FeeCategoryName        string  `gorm:"column:fee_category_name;type:varchar(80);not null" json:"fee_category_name"`
	FeeCategoryDescription *string `gorm:"column:fee_category_description;type:text" json:"fee_category_description,omitempty"`

	FeeCategoryCreatedAt time.Time      `gorm:"column:fee_category_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_category_created_at"`
	FeeCategoryUpdatedAt time.Time      `gorm:"column:fee_category_updated_at;type:timestamptz;not null;autoUpdateTime" json:"fee_category_updated_at"`
	FeeCategoryDeletedAt gorm.DeletedAt `gorm:"column:fee_category_deleted_at;type:timestamptz;index" json:"-"`

	// Catatan: unique index parsial (lower(name) WHERE deleted_at IS NULL)
	// dibuat di databases/migrate.go.
}

func (FeeCategory) TableName() string { return "fee_categories" }

func (m *FeeCategory) BeforeCreate(tx *gorm.DB) error {
	if m.FeeCategoryID == uuid.Nil {
		m.FeeCategoryID = uuid.New()
	}
	return nil
}
