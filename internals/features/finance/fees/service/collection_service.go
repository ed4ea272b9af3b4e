// file: internals/features/finance/fees/service/collection_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
)

/* =======================================================
   COLLECTION LEDGER
   Pembayaran aktual terhadap assignment (atau direct payment
   yang mensintesis structure+assignment sekali-pakai).
======================================================= */

const maxReceiptAttempts = 5

type CollectInput struct {
	// Jalur assignment
	AssignmentID *uuid.UUID

	// Jalur direct payment
	IsDirectPayment bool
	StudentID       uuid.UUID // wajib untuk direct; diabaikan untuk assignment
	CategoryID      uuid.UUID // wajib untuk direct
	DueDate         *time.Time
	Description     *string

	Amount        int64
	PaymentMethod string
	Reference     *string
	CollectedBy   uuid.UUID
}

// Collect mencatat pembayaran dan mengembalikan collection + assignment hasil
// mutasinya. Dua jalur:
//   - assignment: conditional update (WHERE pending >= amount) menjaga
//     overpayment di bawah konkurensi, bukan read-modify-write.
//   - direct: structure sekali-pakai + assignment lunas + collection, satu
//     transaksi; gagal di tengah berarti tidak ada rule yatim yang tersisa.
func Collect(db *gorm.DB, in CollectInput) (*model.FeeCollection, *model.StudentFeeAssignment, error) {
	if in.Amount <= 0 {
		return nil, nil, &ValidationError{Field: "amount", Msg: "must be greater than 0"}
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = model.FeePaymentMethodCash
	}

	if in.IsDirectPayment {
		return collectDirect(db, in)
	}
	if in.AssignmentID == nil {
		return nil, nil, &ValidationError{Field: "assignment_id", Msg: "is required unless is_direct_payment"}
	}
	return collectAgainstAssignment(db, in)
}

func collectAgainstAssignment(db *gorm.DB, in CollectInput) (*model.FeeCollection, *model.StudentFeeAssignment, error) {
	var (
		col model.FeeCollection
		asg model.StudentFeeAssignment
	)

	err := runTxWithRetry(db, func(tx *gorm.DB) error {
		if err := tx.First(&asg, "student_fee_assignment_id = ?", *in.AssignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if asg.StudentFeeAssignmentStatus == model.FeeAssignmentStatusCancelled {
			return &CancelledAssignmentError{AssignmentID: asg.StudentFeeAssignmentID}
		}
		if err := CheckPayable(asg.StudentFeeAssignmentPendingAmount, in.Amount); err != nil {
			return err
		}

		// Guard konkuren: dua kasir membayar assignment yang sama tidak boleh
		// membuat paid > total. Update bersyarat; 0 row = kalah race.
		upd := tx.Model(&model.StudentFeeAssignment{}).
			Where("student_fee_assignment_id = ? AND student_fee_assignment_pending_amount >= ?",
				asg.StudentFeeAssignmentID, in.Amount).
			Updates(map[string]any{
				"student_fee_assignment_paid_amount":    gorm.Expr("student_fee_assignment_paid_amount + ?", in.Amount),
				"student_fee_assignment_pending_amount": gorm.Expr("student_fee_assignment_pending_amount - ?", in.Amount),
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			// saldo berubah di bawah kaki kita; muat ulang untuk pesan akurat
			if err := tx.First(&asg, "student_fee_assignment_id = ?", asg.StudentFeeAssignmentID).Error; err != nil {
				return err
			}
			return &OverpaymentError{
				Pending:   asg.StudentFeeAssignmentPendingAmount,
				Requested: in.Amount,
			}
		}

		if err := tx.First(&asg, "student_fee_assignment_id = ?", asg.StudentFeeAssignmentID).Error; err != nil {
			return err
		}
		newStatus := NextStatus(asg.StudentFeeAssignmentPendingAmount)
		if err := tx.Model(&asg).
			Update("student_fee_assignment_status", newStatus).Error; err != nil {
			return err
		}
		asg.StudentFeeAssignmentStatus = newStatus

		c, err := insertCollection(tx, asg.StudentFeeAssignmentStudentID, &asg.StudentFeeAssignmentID, in)
		if err != nil {
			return err
		}
		col = *c
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &col, &asg, nil
}

func collectDirect(db *gorm.DB, in CollectInput) (*model.FeeCollection, *model.StudentFeeAssignment, error) {
	if in.StudentID == uuid.Nil {
		return nil, nil, &ValidationError{Field: "student_id", Msg: "is required for direct payments"}
	}
	if in.CategoryID == uuid.Nil {
		return nil, nil, &ValidationError{Field: "fee_category_id", Msg: "is required for direct payments"}
	}

	var (
		col model.FeeCollection
		asg model.StudentFeeAssignment
	)

	err := runTxWithRetry(db, func(tx *gorm.DB) error {
		// kategori harus ada
		var catCount int64
		if err := tx.Model(&model.FeeCategory{}).
			Where("fee_category_id = ?", in.CategoryID).
			Count(&catCount).Error; err != nil {
			return err
		}
		if catCount == 0 {
			return &ValidationError{Field: "fee_category_id", Msg: "unknown category"}
		}

		// siswa harus ada; pembayaran untuk siswa hantu tidak boleh
		// meninggalkan structure+assignment sintetis di ledger
		yearID, err := studentAcademicYearID(tx, in.StudentID)
		if err != nil {
			return err
		}

		// (a) structure sekali-pakai; tidak ber-grade, tidak ber-semester nyata
		now := time.Now()
		dueDate := now
		if in.DueDate != nil {
			dueDate = *in.DueDate
		}
		semester := model.DirectPaymentSemester
		st := model.FeeStructure{
			FeeStructureAcademicYearID: yearID,
			FeeStructureScope:          model.FeeScopeGlobal,
			FeeStructureCategoryID:     in.CategoryID,
			FeeStructureAmount:         in.Amount,
			FeeStructureSemester:       &semester,
			FeeStructureDueDate:        dueDate,
			FeeStructureIsDirect:       true,
		}
		if err := tx.Create(&st).Error; err != nil {
			return err
		}

		// (b) assignment langsung lunas
		asg = model.StudentFeeAssignment{
			StudentFeeAssignmentStudentID:     in.StudentID,
			StudentFeeAssignmentStructureID:   st.FeeStructureID,
			StudentFeeAssignmentSemester:      semester,
			StudentFeeAssignmentTotalAmount:   in.Amount,
			StudentFeeAssignmentPaidAmount:    in.Amount,
			StudentFeeAssignmentPendingAmount: 0,
			StudentFeeAssignmentDueDate:       dueDate,
			StudentFeeAssignmentStatus:        model.FeeAssignmentStatusPaid,
		}
		if err := tx.Create(&asg).Error; err != nil {
			return err
		}

		// (c) collection penuh
		c, err := insertCollection(tx, in.StudentID, &asg.StudentFeeAssignmentID, in)
		if err != nil {
			return err
		}
		col = *c

		audit := model.FeeAuditLog{
			FeeAuditLogActorUserID: in.CollectedBy,
			FeeAuditLogAction:      model.FeeAuditActionDirectPayment,
			FeeAuditLogEntityType:  "fee_collection",
			FeeAuditLogEntityID:    col.FeeCollectionID,
			FeeAuditLogDetail: datatypes.JSONMap{
				"student_id":  in.StudentID.String(),
				"category_id": in.CategoryID.String(),
				"amount":      in.Amount,
			},
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &col, &asg, nil
}

// NextStatus menentukan status tersimpan dari pending yang tersisa.
// pending == 0 → paid, selain itu partial (pemanggil menjamin sudah ada
// pembayaran yang masuk).
func NextStatus(pending int64) model.FeeAssignmentStatus {
	if pending == 0 {
		return model.FeeAssignmentStatusPaid
	}
	return model.FeeAssignmentStatusPartial
}

// CheckPayable adalah satu-satunya aturan "boleh bayar berapa": amount harus
// positif dan tidak melebihi pending. Conditional update di DB menegakkan hal
// yang sama di bawah konkurensi; fungsi ini yang menentukan pesan errornya.
func CheckPayable(pending, amount int64) error {
	if amount <= 0 {
		return &ValidationError{Field: "amount", Msg: "must be greater than 0"}
	}
	if amount > pending {
		return &OverpaymentError{Pending: pending, Requested: amount}
	}
	return nil
}

// insertCollection menulis baris kwitansi. Nomor diusulkan dari sequence
// harian; kalau unique constraint menolak (dua kasir commit bersamaan),
// coba nomor berikutnya — terbatas, bukan loop buta.
//
// Tiap attempt dibungkus savepoint: di Postgres, INSERT yang ditolak unique
// index membuat seluruh transaksi abort (25P02 untuk statement berikutnya),
// jadi tanpa ROLLBACK TO SAVEPOINT attempt kedua tidak akan pernah jalan.
func insertCollection(tx *gorm.DB, studentID uuid.UUID, assignmentID *uuid.UUID, in CollectInput) (*model.FeeCollection, error) {
	now := time.Now()
	for attempt := int64(0); attempt < maxReceiptAttempts; attempt++ {
		receipt, err := nextReceiptNumber(tx, now, attempt)
		if err != nil {
			return nil, err
		}
		c := model.FeeCollection{
			FeeCollectionStudentID:     studentID,
			FeeCollectionAssignmentID:  assignmentID,
			FeeCollectionAmount:        in.Amount,
			FeeCollectionPaymentMethod: in.PaymentMethod,
			FeeCollectionReference:     in.Reference,
			FeeCollectionReceiptNumber: receipt,
			FeeCollectionCollectedBy:   in.CollectedBy,
			FeeCollectionDate:          now,
			FeeCollectionNote:          in.Description,
		}
		if err := tx.SavePoint("sp_receipt").Error; err != nil {
			return nil, err
		}
		err = tx.Create(&c).Error
		if err == nil {
			return &c, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if err := tx.RollbackTo("sp_receipt").Error; err != nil {
			return nil, err
		}
	}
	return nil, &InvariantViolationError{
		Op:     "insertCollection",
		Detail: "could not allocate a unique receipt number",
	}
}

// studentAcademicYearID: direct payment menempel ke tahun ajaran berjalan
// siswa. Siswa yang tidak dikenal ditolak di sini, sebelum ada baris sintetis
// yang tertulis.
func studentAcademicYearID(tx *gorm.DB, studentID uuid.UUID) (uuid.UUID, error) {
	var ids []uuid.UUID
	if err := tx.Model(&studentModel.Student{}).
		Where("student_id = ?", studentID).
		Limit(1).
		Pluck("student_academic_year_id", &ids).Error; err != nil {
		return uuid.Nil, err
	}
	if len(ids) == 0 {
		return uuid.Nil, &ValidationError{Field: "student_id", Msg: "unknown student"}
	}
	return ids[0], nil
}

/* =======================================================
   VERIFY — one-way, idempotent
======================================================= */

func VerifyCollection(db *gorm.DB, collectionID, verifierID uuid.UUID) (*model.FeeCollection, error) {
	var col model.FeeCollection
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&col, "fee_collection_id = ?", collectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if col.FeeCollectionIsVerified {
			return nil // verifikasi ulang = no-op sukses
		}

		now := time.Now()
		if err := tx.Model(&col).Updates(map[string]any{
			"fee_collection_is_verified": true,
			"fee_collection_verified_by": verifierID,
			"fee_collection_verified_at": now,
		}).Error; err != nil {
			return err
		}
		col.FeeCollectionIsVerified = true
		col.FeeCollectionVerifiedBy = &verifierID
		col.FeeCollectionVerifiedAt = &now

		audit := model.FeeAuditLog{
			FeeAuditLogActorUserID: verifierID,
			FeeAuditLogAction:      model.FeeAuditActionCollectionVerified,
			FeeAuditLogEntityType:  "fee_collection",
			FeeAuditLogEntityID:    col.FeeCollectionID,
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return nil, err
	}
	return &col, nil
}
