// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentAdmissionNumber string `gorm:"column:student_admission_number;type:varchar(30);not null;uniqueIndex:uq_students_admission_number" json:"student_admission_number"`
	StudentFullName        string `gorm:"column:student_full_name;type:varchar(120);not null" json:"student_full_name"`

	// Penempatan saat ini
	StudentAcademicYearID uuid.UUID  `gorm:"column:student_academic_year_id;type:uuid;not null;index:idx_students_year_grade,priority:1" json:"student_academic_year_id"`
	StudentGradeID        uuid.UUID  `gorm:"column:student_grade_id;type:uuid;not null;index:idx_students_year_grade,priority:2" json:"student_grade_id"`
	StudentDivisionID     *uuid.UUID `gorm:"column:student_division_id;type:uuid;index" json:"student_division_id,omitempty"`

	StudentIsActive bool `gorm:"column:student_is_active;not null;default:true;index" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;type:timestamptz;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}

// StudentGuardian menghubungkan siswa dengan akun wali (users).
type StudentGuardian struct {
	StudentGuardianID uuid.UUID `gorm:"column:student_guardian_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_guardian_id"`

	StudentGuardianStudentID uuid.UUID `gorm:"column:student_guardian_student_id;type:uuid;not null;index:uq_student_guardian,unique,priority:1" json:"student_guardian_student_id"`
	StudentGuardianUserID    uuid.UUID `gorm:"column:student_guardian_user_id;type:uuid;not null;index:uq_student_guardian,unique,priority:2" json:"student_guardian_user_id"`

	// father | mother | guardian
	StudentGuardianRelation string `gorm:"column:student_guardian_relation;type:varchar(20);not null;default:'guardian'" json:"student_guardian_relation"`

	StudentGuardianCreatedAt time.Time      `gorm:"column:student_guardian_created_at;type:timestamptz;not null;autoCreateTime" json:"student_guardian_created_at"`
	StudentGuardianDeletedAt gorm.DeletedAt `gorm:"column:student_guardian_deleted_at;type:timestamptz;index" json:"-"`
}

func (StudentGuardian) TableName() string { return "student_guardians" }

func (m *StudentGuardian) BeforeCreate(tx *gorm.DB) error {
	if m.StudentGuardianID == uuid.Nil {
		m.StudentGuardianID = uuid.New()
	}
	return nil
}
