package database

import (
	"log"

	"gorm.io/gorm"

	feeModel "schoolku_backend/internals/features/finance/fees/model"
	yearModel "schoolku_backend/internals/features/school/academics/academic_years/model"
	gradeModel "schoolku_backend/internals/features/school/classes/grades/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	userModel "schoolku_backend/internals/features/users/users/model"
)

// Migrate menjalankan AutoMigrate lalu membuat index parsial/expression yang
// tidak bisa diekspresikan lewat tag GORM. Index-index inilah mekanisme
// keamanan konkurensi engine fee (duplicate key = outcome yang di-handle,
// bukan kegagalan).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.User{},
		&yearModel.AcademicYear{},
		&gradeModel.Grade{},
		&gradeModel.Division{},
		&studentModel.Student{},
		&studentModel.StudentGuardian{},
		&feeModel.FeeCategory{},
		&feeModel.FeeStructure{},
		&feeModel.StudentFeeAssignment{},
		&feeModel.FeeCollection{},
		&feeModel.FeeAuditLog{},
	); err != nil {
		return err
	}

	stmts := []string{
		// Nama kategori unik di antara baris hidup.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_fee_categories_name_live
		   ON fee_categories (lower(fee_category_name))
		   WHERE fee_category_deleted_at IS NULL`,

		// Satu structure aktif per (tahun ajaran, grade-atau-global, kategori).
		// COALESCE membuat scope global ikut serta dalam uniqueness sebagai
		// nilai literal, bukan NULL yang lolos dari unique biasa.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_fee_structures_scope_live
		   ON fee_structures (
		     fee_structure_academic_year_id,
		     COALESCE(fee_structure_grade_id, '00000000-0000-0000-0000-000000000000'::uuid),
		     fee_structure_category_id
		   )
		   WHERE fee_structure_deleted_at IS NULL AND NOT fee_structure_is_direct`,

		// Satu assignment aktif non-cancelled per (siswa, structure); penopang
		// ON CONFLICT DO NOTHING di assignment engine.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_sfa_student_structure_live
		   ON student_fee_assignments (
		     student_fee_assignment_student_id,
		     student_fee_assignment_structure_id
		   )
		   WHERE student_fee_assignment_status <> 'cancelled'
		     AND student_fee_assignment_deleted_at IS NULL`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Migration complete.")
	return nil
}
