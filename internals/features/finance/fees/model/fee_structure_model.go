// file: internals/features/finance/fees/model/fee_structure_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM fee_structure_scope ------------------------------------------------
// Scope eksplisit menggantikan "grade_id NULL = global" dari sistem lama,
// supaya cabang global-vs-grade selalu exhaustive.
type FeeStructureScope string

const (
	FeeScopeGlobal FeeStructureScope = "global" // berlaku untuk semua grade di tahun ajaran
	FeeScopeGrade  FeeStructureScope = "grade"  // berlaku untuk satu grade
)

// Semester literal yang dipakai assignment ketika structure semester-agnostic.
const DefaultSemester = "Semester 1"

// Semester sintetis untuk structure sekali-pakai hasil direct payment.
const DirectPaymentSemester = "Direct Payment"

// --- MODEL fee_structures ----------------------------------------------------
type FeeStructure struct {
	// PK
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_structure_id"`

	// Scope
	FeeStructureAcademicYearID uuid.UUID         `gorm:"column:fee_structure_academic_year_id;type:uuid;not null;index:idx_fee_structures_year" json:"fee_structure_academic_year_id"`
	FeeStructureScope          FeeStructureScope `gorm:"column:fee_structure_scope;type:varchar(10);not null;default:'global'" json:"fee_structure_scope"`
	FeeStructureGradeID        *uuid.UUID        `gorm:"column:fee_structure_grade_id;type:uuid;index" json:"fee_structure_grade_id,omitempty"`
	FeeStructureCategoryID     uuid.UUID         `gorm:"column:fee_structure_category_id;type:uuid;not null;index" json:"fee_structure_category_id"`

	// Nominal (minor units) & kewajiban
	FeeStructureAmount      int64 `gorm:"column:fee_structure_amount;type:bigint;not null;check:fee_structure_amount > 0" json:"fee_structure_amount"`
	FeeStructureIsMandatory bool  `gorm:"column:fee_structure_is_mandatory;not null;default:false" json:"fee_structure_is_mandatory"`

	// Semester NULL = berlaku di semua semester tahun ajaran tsb.
	FeeStructureSemester *string   `gorm:"column:fee_structure_semester;type:varchar(30)" json:"fee_structure_semester,omitempty"`
	FeeStructureDueDate  time.Time `gorm:"column:fee_structure_due_date;type:date;not null" json:"fee_structure_due_date"`

	// Late fee & cicilan
	FeeStructureLateFeeAmount       int64  `gorm:"column:fee_structure_late_fee_amount;type:bigint;not null;default:0;check:fee_structure_late_fee_amount >= 0" json:"fee_structure_late_fee_amount"`
	FeeStructureLateFeeGraceDays    int16  `gorm:"column:fee_structure_late_fee_grace_days;type:smallint;not null;default:0" json:"fee_structure_late_fee_grace_days"`
	FeeStructureInstallmentsAllowed bool   `gorm:"column:fee_structure_installments_allowed;not null;default:false" json:"fee_structure_installments_allowed"`
	FeeStructureMaxInstallments     *int16 `gorm:"column:fee_structure_max_installments;type:smallint" json:"fee_structure_max_installments,omitempty"`

	// Structure sekali-pakai yang disintesis oleh direct payment; tidak pernah
	// ikut resolve/materialize dan dikecualikan dari uniqueness check.
	FeeStructureIsDirect bool `gorm:"column:fee_structure_is_direct;not null;default:false" json:"fee_structure_is_direct"`

	// Timestamps
	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;type:timestamptz;not null;autoUpdateTime" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;type:timestamptz;index" json:"-"`

	// Catatan:
	// - Unique index parsial (year, COALESCE(grade_id, nil-uuid), category)
	//   WHERE deleted_at IS NULL AND NOT is_direct dibuat di databases/migrate.go;
	//   dialah penjaga konkurensi yang sebenarnya, bukan pre-check aplikasi.
}

func (FeeStructure) TableName() string { return "fee_structures" }

func (m *FeeStructure) BeforeCreate(tx *gorm.DB) error {
	if m.FeeStructureID == uuid.Nil {
		m.FeeStructureID = uuid.New()
	}
	return nil
}

// BeforeSave menjaga konsistensi scope <-> grade_id saat create maupun update.
func (m *FeeStructure) BeforeSave(tx *gorm.DB) error {
	switch m.FeeStructureScope {
	case FeeScopeGlobal:
		if m.FeeStructureGradeID != nil {
			return fmt.Errorf("fee_structure_grade_id must be empty for scope=global")
		}
	case FeeScopeGrade:
		if m.FeeStructureGradeID == nil {
			return fmt.Errorf("fee_structure_grade_id is required for scope=grade")
		}
	default:
		return fmt.Errorf("invalid fee_structure_scope %q", m.FeeStructureScope)
	}
	return nil
}

// IsGlobal melaporkan apakah structure berlaku untuk seluruh grade.
func (m *FeeStructure) IsGlobal() bool { return m.FeeStructureScope == FeeScopeGlobal }

// ResolvedSemester mengembalikan semester konkret yang dipakai assignment.
// Structure semester-agnostic selalu jatuh ke DefaultSemester supaya summary
// per-semester tidak punya bucket NULL.
func (m *FeeStructure) ResolvedSemester() string {
	if m.FeeStructureSemester != nil && *m.FeeStructureSemester != "" {
		return *m.FeeStructureSemester
	}
	return DefaultSemester
}
