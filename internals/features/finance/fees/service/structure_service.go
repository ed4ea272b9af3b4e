// file: internals/features/finance/fees/service/structure_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
	gradeModel "schoolku_backend/internals/features/school/classes/grades/model"
)

/* =======================================================
   STRUCTURE STORE
   Rule biaya: amount + scope (tahun/grade) + timing.
======================================================= */

type StructureInput struct {
	AcademicYearID      uuid.UUID
	GradeID             *uuid.UUID // nil = global
	CategoryID          uuid.UUID
	Amount              int64
	IsMandatory         bool
	Semester            *string // nil = semua semester
	DueDate             time.Time
	LateFeeAmount       int64
	LateFeeGraceDays    int16
	InstallmentsAllowed bool
	MaxInstallments     *int16
}

// CreateStructure memvalidasi rule, menyimpannya, lalu langsung
// mematerialisasi assignment — semuanya dalam SATU transaksi: gagal bikin
// assignment berarti structure ikut batal.
func CreateStructure(db *gorm.DB, in StructureInput) (*model.FeeStructure, MaterializeResult, error) {
	var (
		st  model.FeeStructure
		res MaterializeResult
	)

	if err := validateStructureInput(db, &in); err != nil {
		return nil, res, err
	}

	err := runTxWithRetry(db, func(tx *gorm.DB) error {
		st = structureFromInput(in)
		if err := tx.Create(&st).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// unique index parsial-lah yang memutus race dua admin;
				// yang kalah menerima konflik sebagai error domain.
				return &DuplicateStructureError{
					AcademicYearID: in.AcademicYearID,
					GradeID:        in.GradeID,
					CategoryID:     in.CategoryID,
				}
			}
			return err
		}

		r, err := MaterializeForStructure(tx, st.FeeStructureID)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, MaterializeResult{}, err
	}
	return &st, res, nil
}

// UpdateStructure memvalidasi ulang (uniqueness mengecualikan dirinya sendiri).
// Perubahan amount/due_date TIDAK menjalar ke assignment yang sudah ada —
// tagihan yang sudah dikomunikasikan tidak boleh berubah diam-diam.
func UpdateStructure(db *gorm.DB, id uuid.UUID, in StructureInput) (*model.FeeStructure, error) {
	if err := validateStructureInput(db, &in); err != nil {
		return nil, err
	}

	var st model.FeeStructure
	err := runTxWithRetry(db, func(tx *gorm.DB) error {
		if err := tx.First(&st, "fee_structure_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if st.FeeStructureIsDirect {
			return &ValidationError{Field: "fee_structure_id", Msg: "direct-payment structures cannot be edited"}
		}

		applyStructureInput(&st, in)
		if err := tx.Save(&st).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &DuplicateStructureError{
					AcademicYearID: in.AcademicYearID,
					GradeID:        in.GradeID,
					CategoryID:     in.CategoryID,
				}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &st, nil
}

type DeleteStructureResult struct {
	Cancelled  int         `json:"cancelled"`
	SkippedIDs []uuid.UUID `json:"skipped_ids"`
}

// DeleteStructure: tanpa force, terblokir kalau masih ada assignment aktif
// (caller dapat count untuk memutuskan). Dengan force, cascade-cancel yang
// belum dibayar + soft-delete structure dalam satu transaksi, dan daftar
// assignment yang dilewati dilaporkan untuk audit.
func DeleteStructure(db *gorm.DB, id uuid.UUID, force bool, actorID uuid.UUID) (DeleteStructureResult, error) {
	var out DeleteStructureResult

	err := runTxWithRetry(db, func(tx *gorm.DB) error {
		var st model.FeeStructure
		if err := tx.First(&st, "fee_structure_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var active int64
		if err := tx.Model(&model.StudentFeeAssignment{}).
			Where("student_fee_assignment_structure_id = ? AND student_fee_assignment_status <> ?",
				id, model.FeeAssignmentStatusCancelled).
			Count(&active).Error; err != nil {
			return err
		}

		if active > 0 && !force {
			return &HasActiveAssignmentsError{Count: active}
		}

		if active > 0 {
			res, err := CancelForStructure(tx, id, "structure force-deleted")
			if err != nil {
				return err
			}
			out.Cancelled = res.Cancelled
			out.SkippedIDs = res.SkippedIDs

			skipped := make([]any, 0, len(res.SkippedIDs))
			for _, sid := range res.SkippedIDs {
				skipped = append(skipped, sid.String())
			}
			audit := model.FeeAuditLog{
				FeeAuditLogActorUserID: actorID,
				FeeAuditLogAction:      model.FeeAuditActionStructureForceDeleted,
				FeeAuditLogEntityType:  "fee_structure",
				FeeAuditLogEntityID:    id,
				FeeAuditLogDetail: datatypes.JSONMap{
					"cancelled":   res.Cancelled,
					"skipped_ids": skipped,
				},
			}
			if err := tx.Create(&audit).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&st).Error // soft delete (gorm.DeletedAt)
	})
	return out, err
}

/* =======================================================
   RESOLVE — scope matching untuk satu siswa
======================================================= */

type ResolveFilter struct {
	AcademicYearID uuid.UUID
	GradeID        uuid.UUID
	MandatoryOnly  bool
}

type ResolvedStructure struct {
	model.FeeStructure
	IsGlobal bool `json:"is_global"`
}

// ResolveStructures mengembalikan semua structure hidup yang scope-nya cocok:
// grade siswa ATAU global. Division bukan diskriminator (field legacy).
// Structure sintetis direct payment tidak pernah ikut.
func ResolveStructures(tx *gorm.DB, f ResolveFilter) ([]ResolvedStructure, error) {
	q := tx.Model(&model.FeeStructure{}).
		Where("fee_structure_academic_year_id = ? AND NOT fee_structure_is_direct", f.AcademicYearID).
		Where(
			tx.Where("fee_structure_scope = ?", model.FeeScopeGlobal).
				Or("fee_structure_scope = ? AND fee_structure_grade_id = ?", model.FeeScopeGrade, f.GradeID),
		)
	if f.MandatoryOnly {
		q = q.Where("fee_structure_is_mandatory = true")
	}

	var rows []model.FeeStructure
	if err := q.Order("fee_structure_due_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ResolvedStructure, 0, len(rows))
	for _, st := range rows {
		out = append(out, ResolvedStructure{FeeStructure: st, IsGlobal: st.IsGlobal()})
	}
	return out, nil
}

/* =======================================================
   internals
======================================================= */

func validateStructureInput(db *gorm.DB, in *StructureInput) error {
	if in.Amount <= 0 {
		return &ValidationError{Field: "amount", Msg: "must be greater than 0"}
	}
	if in.DueDate.IsZero() {
		return &ValidationError{Field: "due_date", Msg: "is required"}
	}
	if in.LateFeeAmount < 0 {
		return &ValidationError{Field: "late_fee_amount", Msg: "must not be negative"}
	}
	if in.InstallmentsAllowed && (in.MaxInstallments == nil || *in.MaxInstallments < 2) {
		return &ValidationError{Field: "max_installments", Msg: "must be at least 2 when installments are allowed"}
	}

	// kategori harus ada
	var catCount int64
	if err := db.Model(&model.FeeCategory{}).
		Where("fee_category_id = ?", in.CategoryID).
		Count(&catCount).Error; err != nil {
		return err
	}
	if catCount == 0 {
		return &ValidationError{Field: "fee_category_id", Msg: "unknown category"}
	}

	// grade (kalau diberikan) harus ada dan aktif
	if in.GradeID != nil {
		var g gradeModel.Grade
		if err := db.First(&g, "grade_id = ?", *in.GradeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{Field: "grade_id", Msg: "unknown grade"}
			}
			return err
		}
		if !g.GradeIsActive {
			return &ValidationError{Field: "grade_id", Msg: "grade is inactive"}
		}
	}
	return nil
}

func structureFromInput(in StructureInput) model.FeeStructure {
	scope := model.FeeScopeGlobal
	if in.GradeID != nil {
		scope = model.FeeScopeGrade
	}
	return model.FeeStructure{
		FeeStructureAcademicYearID:      in.AcademicYearID,
		FeeStructureScope:               scope,
		FeeStructureGradeID:             in.GradeID,
		FeeStructureCategoryID:          in.CategoryID,
		FeeStructureAmount:              in.Amount,
		FeeStructureIsMandatory:         in.IsMandatory,
		FeeStructureSemester:            in.Semester,
		FeeStructureDueDate:             in.DueDate,
		FeeStructureLateFeeAmount:       in.LateFeeAmount,
		FeeStructureLateFeeGraceDays:    in.LateFeeGraceDays,
		FeeStructureInstallmentsAllowed: in.InstallmentsAllowed,
		FeeStructureMaxInstallments:     in.MaxInstallments,
	}
}

func applyStructureInput(st *model.FeeStructure, in StructureInput) {
	scope := model.FeeScopeGlobal
	if in.GradeID != nil {
		scope = model.FeeScopeGrade
	}
	st.FeeStructureAcademicYearID = in.AcademicYearID
	st.FeeStructureScope = scope
	st.FeeStructureGradeID = in.GradeID
	st.FeeStructureCategoryID = in.CategoryID
	st.FeeStructureAmount = in.Amount
	st.FeeStructureIsMandatory = in.IsMandatory
	st.FeeStructureSemester = in.Semester
	st.FeeStructureDueDate = in.DueDate
	st.FeeStructureLateFeeAmount = in.LateFeeAmount
	st.FeeStructureLateFeeGraceDays = in.LateFeeGraceDays
	st.FeeStructureInstallmentsAllowed = in.InstallmentsAllowed
	st.FeeStructureMaxInstallments = in.MaxInstallments
}
