// file: internals/features/school/academics/academic_years/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Semester yang dikenal untuk satu tahun ajaran.
var Semesters = []string{"Semester 1", "Semester 2"}

func IsKnownSemester(s string) bool {
	for _, x := range Semesters {
		if x == s {
			return true
		}
	}
	return false
}

type AcademicYear struct {
	AcademicYearID uuid.UUID `gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_year_id"`

	// mis. "2024/2025"
	AcademicYearCode string `gorm:"column:academic_year_code;type:varchar(20);not null;uniqueIndex:uq_academic_years_code" json:"academic_year_code"`

	AcademicYearStartDate time.Time `gorm:"column:academic_year_start_date;type:date;not null" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"column:academic_year_end_date;type:date;not null" json:"academic_year_end_date"`

	// Paling banyak satu tahun ajaran berjalan (dijaga di controller saat set active).
	AcademicYearIsActive bool `gorm:"column:academic_year_is_active;not null;default:false;index" json:"academic_year_is_active"`

	AcademicYearCreatedAt time.Time      `gorm:"column:academic_year_created_at;type:timestamptz;not null;autoCreateTime" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"column:academic_year_updated_at;type:timestamptz;not null;autoUpdateTime" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;type:timestamptz;index" json:"-"`
}

func (AcademicYear) TableName() string { return "academic_years" }

func (m *AcademicYear) BeforeCreate(tx *gorm.DB) error {
	if m.AcademicYearID == uuid.Nil {
		m.AcademicYearID = uuid.New()
	}
	return nil
}
