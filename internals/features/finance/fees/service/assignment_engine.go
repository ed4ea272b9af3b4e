// file: internals/features/finance/fees/service/assignment_engine.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/finance/fees/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
)

/* =======================================================
   ASSIGNMENT ENGINE
   Materialisasi rule -> kewajiban per siswa, dan kebalikannya
   (cancel massal saat rule di-force-delete / siswa pindah).
======================================================= */

type MaterializeResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

type CancelResult struct {
	Cancelled  int         `json:"cancelled"`
	SkippedIDs []uuid.UUID `json:"skipped_ids"` // sudah ada pembayaran, butuh review manual
}

// MaterializeForStructure membuat satu assignment per siswa eligible, at-most-once.
// Insert memakai ON CONFLICT DO NOTHING pada unique index parsial
// (student, structure, non-cancelled), jadi pemanggilan berulang maupun run
// konkuren berakhir di keadaan yang sama tanpa error.
func MaterializeForStructure(tx *gorm.DB, structureID uuid.UUID) (MaterializeResult, error) {
	var res MaterializeResult

	var st model.FeeStructure
	if err := tx.First(&st, "fee_structure_id = ?", structureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrNotFound
		}
		return res, err
	}
	// Structure sintetis milik direct payment bukan rule: nominalnya ad-hoc
	// dari satu pembayaran, jadi tidak boleh dijadikan tagihan massal.
	if st.FeeStructureIsDirect {
		return res, &ValidationError{Field: "fee_structure_id", Msg: "direct-payment structures cannot be materialized"}
	}

	students, err := eligibleStudentIDs(tx, &st)
	if err != nil {
		return res, err
	}

	for _, sid := range students {
		inserted, err := insertAssignment(tx, &st, sid)
		if err != nil {
			return res, err
		}
		if inserted {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}
	return res, nil
}

// MaterializeForStudent adalah entry point kebalikan: dipakai saat satu siswa
// baru masuk / pindah grade. Resolve structure mandatory yang berlaku lalu
// terapkan insert per-structure yang sama, sehingga urutan pemanggilan
// (per-structure dulu atau per-student dulu) komutatif.
func MaterializeForStudent(tx *gorm.DB, studentID, gradeID, academicYearID uuid.UUID) (MaterializeResult, error) {
	var res MaterializeResult

	structures, err := ResolveStructures(tx, ResolveFilter{
		AcademicYearID: academicYearID,
		GradeID:        gradeID,
		MandatoryOnly:  true,
	})
	if err != nil {
		return res, err
	}

	for i := range structures {
		inserted, err := insertAssignment(tx, &structures[i].FeeStructure, studentID)
		if err != nil {
			return res, err
		}
		if inserted {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}
	return res, nil
}

// CancelForStructure membatalkan assignment aktif milik satu structure.
// Hanya yang belum dibayar sama sekali yang aman dibatalkan otomatis;
// yang partial/paid dilewati dan dilaporkan untuk audit.
func CancelForStructure(tx *gorm.DB, structureID uuid.UUID, reason string) (CancelResult, error) {
	var res CancelResult

	var rows []model.StudentFeeAssignment
	if err := tx.
		Where("student_fee_assignment_structure_id = ? AND student_fee_assignment_status <> ?",
			structureID, model.FeeAssignmentStatusCancelled).
		Find(&rows).Error; err != nil {
		return res, err
	}

	cancellable, skipped := PartitionCancellable(rows)
	for _, a := range skipped {
		res.SkippedIDs = append(res.SkippedIDs, a.StudentFeeAssignmentID)
	}
	if len(cancellable) == 0 {
		return res, nil
	}

	ids := make([]uuid.UUID, 0, len(cancellable))
	for _, a := range cancellable {
		ids = append(ids, a.StudentFeeAssignmentID)
	}

	now := time.Now()
	upd := tx.Model(&model.StudentFeeAssignment{}).
		Where("student_fee_assignment_id IN ? AND student_fee_assignment_paid_amount = 0", ids).
		Updates(map[string]any{
			"student_fee_assignment_status":        model.FeeAssignmentStatusCancelled,
			"student_fee_assignment_cancel_reason": reason,
			"student_fee_assignment_cancelled_at":  now,
		})
	if upd.Error != nil {
		return res, upd.Error
	}
	res.Cancelled = int(upd.RowsAffected)
	return res, nil
}

// StructureAppliesTo: aturan scope-matching tunggal. Global cocok dengan semua
// grade di tahun ajarannya; grade-scoped hanya dengan grade persisnya.
func StructureAppliesTo(scope model.FeeStructureScope, structGradeID *uuid.UUID, structYearID, gradeID, academicYearID uuid.UUID) bool {
	if structYearID != academicYearID {
		return false
	}
	switch scope {
	case model.FeeScopeGlobal:
		return true
	case model.FeeScopeGrade:
		return structGradeID != nil && *structGradeID == gradeID
	default:
		return false
	}
}

// PartitionCancellable memisahkan assignment yang boleh di-cancel otomatis
// (paid_amount == 0) dari yang harus direview manusia.
func PartitionCancellable(rows []model.StudentFeeAssignment) (cancellable, skipped []model.StudentFeeAssignment) {
	for _, a := range rows {
		if a.StudentFeeAssignmentPaidAmount == 0 {
			cancellable = append(cancellable, a)
		} else {
			skipped = append(skipped, a)
		}
	}
	return cancellable, skipped
}

// CancelForStudent membatalkan semua assignment aktif satu siswa yang belum
// dibayar sama sekali (dipakai saat siswa keluar/nonaktif). Yang sudah ada
// pembayaran dilewati.
func CancelForStudent(tx *gorm.DB, studentID uuid.UUID, reason string) (CancelResult, error) {
	var res CancelResult

	var rows []model.StudentFeeAssignment
	if err := tx.
		Where("student_fee_assignment_student_id = ? AND student_fee_assignment_status <> ?",
			studentID, model.FeeAssignmentStatusCancelled).
		Find(&rows).Error; err != nil {
		return res, err
	}

	cancellable, skipped := PartitionCancellable(rows)
	for _, a := range skipped {
		res.SkippedIDs = append(res.SkippedIDs, a.StudentFeeAssignmentID)
	}
	if len(cancellable) == 0 {
		return res, nil
	}

	ids := make([]uuid.UUID, 0, len(cancellable))
	for _, a := range cancellable {
		ids = append(ids, a.StudentFeeAssignmentID)
	}

	now := time.Now()
	upd := tx.Model(&model.StudentFeeAssignment{}).
		Where("student_fee_assignment_id IN ? AND student_fee_assignment_paid_amount = 0", ids).
		Updates(map[string]any{
			"student_fee_assignment_status":        model.FeeAssignmentStatusCancelled,
			"student_fee_assignment_cancel_reason": reason,
			"student_fee_assignment_cancelled_at":  now,
		})
	if upd.Error != nil {
		return res, upd.Error
	}
	res.Cancelled = int(upd.RowsAffected)
	return res, nil
}

// ReconcileResult merangkum efek mutasi penempatan siswa (pindah grade /
// ganti tahun ajaran) terhadap tagihannya.
type ReconcileResult struct {
	Materialized MaterializeResult `json:"materialized"`
	Cancel       CancelResult      `json:"cancel"`
}

// ReconcileForStudent dipanggil dalam transaksi yang sama dengan mutasi
// penempatan siswa. Assignment dari structure yang tidak lagi berlaku untuk
// penempatan baru di-cancel (hanya yang belum dibayar), lalu structure yang
// berlaku di penempatan baru dimaterialisasi.
func ReconcileForStudent(tx *gorm.DB, studentID, gradeID, academicYearID uuid.UUID, reason string) (ReconcileResult, error) {
	var res ReconcileResult

	type assignmentWithScope struct {
		model.StudentFeeAssignment
		FeeStructureScope          model.FeeStructureScope `gorm:"column:fee_structure_scope"`
		FeeStructureGradeID        *uuid.UUID              `gorm:"column:fee_structure_grade_id"`
		FeeStructureAcademicYearID uuid.UUID               `gorm:"column:fee_structure_academic_year_id"`
		FeeStructureIsDirect       bool                    `gorm:"column:fee_structure_is_direct"`
	}

	var rows []assignmentWithScope
	if err := tx.Model(&model.StudentFeeAssignment{}).
		Select("student_fee_assignments.*, fs.fee_structure_scope, fs.fee_structure_grade_id, fs.fee_structure_academic_year_id, fs.fee_structure_is_direct").
		Joins("JOIN fee_structures fs ON fs.fee_structure_id = student_fee_assignments.student_fee_assignment_structure_id").
		Where("student_fee_assignment_student_id = ? AND student_fee_assignment_status <> ?",
			studentID, model.FeeAssignmentStatusCancelled).
		Find(&rows).Error; err != nil {
		return res, err
	}

	var stale []model.StudentFeeAssignment
	for _, r := range rows {
		if r.FeeStructureIsDirect {
			// pembayaran langsung tidak terikat penempatan
			continue
		}
		if !StructureAppliesTo(r.FeeStructureScope, r.FeeStructureGradeID, r.FeeStructureAcademicYearID, gradeID, academicYearID) {
			stale = append(stale, r.StudentFeeAssignment)
		}
	}

	cancellable, skipped := PartitionCancellable(stale)
	for _, a := range skipped {
		res.Cancel.SkippedIDs = append(res.Cancel.SkippedIDs, a.StudentFeeAssignmentID)
	}
	if len(cancellable) > 0 {
		ids := make([]uuid.UUID, 0, len(cancellable))
		for _, a := range cancellable {
			ids = append(ids, a.StudentFeeAssignmentID)
		}
		now := time.Now()
		upd := tx.Model(&model.StudentFeeAssignment{}).
			Where("student_fee_assignment_id IN ? AND student_fee_assignment_paid_amount = 0", ids).
			Updates(map[string]any{
				"student_fee_assignment_status":        model.FeeAssignmentStatusCancelled,
				"student_fee_assignment_cancel_reason": reason,
				"student_fee_assignment_cancelled_at":  now,
			})
		if upd.Error != nil {
			return res, upd.Error
		}
		res.Cancel.Cancelled = int(upd.RowsAffected)
	}

	mat, err := MaterializeForStudent(tx, studentID, gradeID, academicYearID)
	if err != nil {
		return res, err
	}
	res.Materialized = mat
	return res, nil
}

/* =======================================================
   internals
======================================================= */

// insertAssignment: at-most-once insert. Collision dengan run konkuren
// dianggap sukses (skip), bukan kegagalan.
func insertAssignment(tx *gorm.DB, st *model.FeeStructure, studentID uuid.UUID) (bool, error) {
	a := model.StudentFeeAssignment{
		StudentFeeAssignmentStudentID:     studentID,
		StudentFeeAssignmentStructureID:   st.FeeStructureID,
		StudentFeeAssignmentSemester:      st.ResolvedSemester(),
		StudentFeeAssignmentTotalAmount:   st.FeeStructureAmount,
		StudentFeeAssignmentPendingAmount: st.FeeStructureAmount,
		StudentFeeAssignmentDueDate:       st.FeeStructureDueDate,
		StudentFeeAssignmentStatus:        model.FeeAssignmentStatusPending,
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&a)
	if res.Error != nil {
		// TranslateError aktif; duplicate yang lolos sampai sini tetap skip.
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	// DoNothing: baris yang kena conflict tidak ter-insert, RowsAffected = 0.
	return res.RowsAffected == 1, nil
}

// eligibleStudentIDs memilih siswa aktif di tahun ajaran structure; scope=grade
// mempersempit ke grade tsb, scope=global mencakup semua grade. Division tidak
// pernah jadi diskriminator.
func eligibleStudentIDs(tx *gorm.DB, st *model.FeeStructure) ([]uuid.UUID, error) {
	q := tx.Model(&studentModel.Student{}).
		Where("student_academic_year_id = ? AND student_is_active = true", st.FeeStructureAcademicYearID)

	switch st.FeeStructureScope {
	case model.FeeScopeGrade:
		q = q.Where("student_grade_id = ?", *st.FeeStructureGradeID)
	case model.FeeScopeGlobal:
		// semua grade
	default:
		return nil, &InvariantViolationError{Op: "eligibleStudentIDs", Detail: "unknown scope " + string(st.FeeStructureScope)}
	}

	var ids []uuid.UUID
	if err := q.Pluck("student_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
