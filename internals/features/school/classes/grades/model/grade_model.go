// file: internals/features/school/classes/grades/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Grade adalah jenjang/tingkat (Grade 1, Grade 2, ...). Data referensi untuk
// scope fee structure dan penempatan siswa.
type Grade struct {
	GradeID uuid.UUID `gorm:"column:grade_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_id"`

	GradeName  string `gorm:"column:grade_name;type:varchar(60);not null" json:"grade_name"`
	GradeLevel int16  `gorm:"column:grade_level;type:smallint;not null;index" json:"grade_level"`

	GradeIsActive bool `gorm:"column:grade_is_active;not null;default:true;index" json:"grade_is_active"`

	GradeCreatedAt time.Time      `gorm:"column:grade_created_at;type:timestamptz;not null;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"column:grade_updated_at;type:timestamptz;not null;autoUpdateTime" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;type:timestamptz;index" json:"-"`
}

func (Grade) TableName() string { return "grades" }

func (m *Grade) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID == uuid.Nil {
		m.GradeID = uuid.New()
	}
	return nil
}

// Division adalah rombel di dalam satu grade (1A, 1B, ...). Field legacy untuk
// fee: structure tidak pernah discopekan ke division.
type Division struct {
	DivisionID uuid.UUID `gorm:"column:division_id;type:uuid;default:gen_random_uuid();primaryKey" json:"division_id"`

	DivisionGradeID uuid.UUID `gorm:"column:division_grade_id;type:uuid;not null;index" json:"division_grade_id"`
	DivisionName    string    `gorm:"column:division_name;type:varchar(30);not null" json:"division_name"`

	DivisionCreatedAt time.Time      `gorm:"column:division_created_at;type:timestamptz;not null;autoCreateTime" json:"division_created_at"`
	DivisionUpdatedAt time.Time      `gorm:"column:division_updated_at;type:timestamptz;not null;autoUpdateTime" json:"division_updated_at"`
	DivisionDeletedAt gorm.DeletedAt `gorm:"column:division_deleted_at;type:timestamptz;index" json:"-"`
}

func (Division) TableName() string { return "divisions" }

func (m *Division) BeforeCreate(tx *gorm.DB) error {
	if m.DivisionID == uuid.Nil {
		m.DivisionID = uuid.New()
	}
	return nil
}
