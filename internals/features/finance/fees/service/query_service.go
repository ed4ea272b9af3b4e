// file: internals/features/finance/fees/service/query_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
)

/* =======================================================
   QUERY SURFACE
   Tiap query fungsi murni atas filter struct eksplisit —
   tidak ada builder state yang nyangkut antar pemanggilan.
======================================================= */

type CollectionFilter struct {
	StudentID   *uuid.UUID
	ParentID    *uuid.UUID // join lewat student_guardians
	CollectorID *uuid.UUID
	DateFrom    *time.Time
	DateTo      *time.Time
	Offset      int
	Limit       int
}

func ListCollections(db *gorm.DB, f CollectionFilter) ([]model.FeeCollection, int64, error) {
	q := db.Model(&model.FeeCollection{})

	if f.StudentID != nil {
		q = q.Where("fee_collection_student_id = ?", *f.StudentID)
	}
	if f.ParentID != nil {
		q = q.Where(`fee_collection_student_id IN (
			SELECT student_guardian_student_id FROM student_guardians
			WHERE student_guardian_user_id = ? AND student_guardian_deleted_at IS NULL)`, *f.ParentID)
	}
	if f.CollectorID != nil {
		q = q.Where("fee_collection_collected_by = ?", *f.CollectorID)
	}
	if f.DateFrom != nil {
		q = q.Where("fee_collection_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("fee_collection_date < ?", *f.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.FeeCollection
	if err := q.Order("fee_collection_date DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* ---------- collection summary (group by hari/kasir/kategori) ---------- */

type SummaryGroupBy string

const (
	SummaryByDate     SummaryGroupBy = "date"
	SummaryByStaff    SummaryGroupBy = "staff"
	SummaryByCategory SummaryGroupBy = "category"
)

type SummaryRow struct {
	Key    string `json:"key"`
	Count  int64  `json:"count"`
	Amount int64  `json:"amount"`
}

func CollectionSummary(db *gorm.DB, groupBy SummaryGroupBy, from, to *time.Time) ([]SummaryRow, error) {
	var keyExpr string
	q := db.Model(&model.FeeCollection{})

	switch groupBy {
	case SummaryByStaff:
		keyExpr = "fee_collection_collected_by::text"
	case SummaryByCategory:
		keyExpr = "fs.fee_structure_category_id::text"
		q = q.Joins(`JOIN student_fee_assignments sfa
			ON sfa.student_fee_assignment_id = fee_collections.fee_collection_assignment_id`).
			Joins(`JOIN fee_structures fs
			ON fs.fee_structure_id = sfa.student_fee_assignment_structure_id`)
	default:
		keyExpr = "to_char(fee_collection_date, 'YYYY-MM-DD')"
	}

	if from != nil {
		q = q.Where("fee_collection_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("fee_collection_date < ?", *to)
	}

	var rows []SummaryRow
	err := q.Select(keyExpr + ` AS key,
		COUNT(*) AS count,
		COALESCE(SUM(fee_collection_amount), 0) AS amount`).
		Group(keyExpr).
		Order("key").
		Scan(&rows).Error
	return rows, err
}

/* ---------- outstanding fees (pending > 0, opsional hanya overdue) ---------- */

type OutstandingFilter struct {
	StudentID   *uuid.UUID
	StructureID *uuid.UUID
	OverdueOnly bool
	Offset      int
	Limit       int
}

func ListOutstanding(db *gorm.DB, f OutstandingFilter, now time.Time) ([]model.StudentFeeAssignment, int64, error) {
	q := db.Model(&model.StudentFeeAssignment{}).
		Where("student_fee_assignment_pending_amount > 0").
		Where("student_fee_assignment_status IN ?", []model.FeeAssignmentStatus{
			model.FeeAssignmentStatusPending, model.FeeAssignmentStatusPartial,
		})

	if f.StudentID != nil {
		q = q.Where("student_fee_assignment_student_id = ?", *f.StudentID)
	}
	if f.StructureID != nil {
		q = q.Where("student_fee_assignment_structure_id = ?", *f.StructureID)
	}
	if f.OverdueOnly {
		q = q.Where("student_fee_assignment_due_date < ?", civilDate(now))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.StudentFeeAssignment
	if err := q.Order("student_fee_assignment_due_date ASC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* ---------- dashboard totals ---------- */

type DashboardTotals struct {
	CollectionCount  int64 `json:"collection_count"`
	TotalCollected   int64 `json:"total_collected"`
	TotalOutstanding int64 `json:"total_outstanding"`
	OutstandingCount int64 `json:"outstanding_count"`
	OverdueCount     int64 `json:"overdue_count"`
}

// Totals menghitung angka ringkas dashboard keuangan.
func Totals(db *gorm.DB, now time.Time) (DashboardTotals, error) {
	var t DashboardTotals

	row := struct {
		Count  int64
		Amount int64
	}{}
	if err := db.Model(&model.FeeCollection{}).
		Select("COUNT(*) AS count, COALESCE(SUM(fee_collection_amount), 0) AS amount").
		Scan(&row).Error; err != nil {
		return t, err
	}
	t.CollectionCount = row.Count
	t.TotalCollected = row.Amount

	open := db.Model(&model.StudentFeeAssignment{}).
		Where("student_fee_assignment_pending_amount > 0").
		Where("student_fee_assignment_status IN ?", []model.FeeAssignmentStatus{
			model.FeeAssignmentStatusPending, model.FeeAssignmentStatusPartial,
		})

	out := struct {
		Count  int64
		Amount int64
	}{}
	if err := open.Session(&gorm.Session{}).
		Select("COUNT(*) AS count, COALESCE(SUM(student_fee_assignment_pending_amount), 0) AS amount").
		Scan(&out).Error; err != nil {
		return t, err
	}
	t.OutstandingCount = out.Count
	t.TotalOutstanding = out.Amount

	if err := open.Session(&gorm.Session{}).
		Where("student_fee_assignment_due_date < ?", civilDate(now)).
		Count(&t.OverdueCount).Error; err != nil {
		return t, err
	}
	return t, nil
}

// civilDate: batas overdue di query mengikuti tanggal kalender lokal pemanggil,
// konsisten dengan StudentFeeAssignment.IsOverdue. Kolomnya bertipe date, jadi
// due hari ini (< besok, >= hari ini) belum overdue.
func civilDate(now time.Time) string {
	return now.Format("2006-01-02")
}

/* ---------- assignments per siswa ---------- */

func ListAssignmentsByStudent(db *gorm.DB, studentID uuid.UUID) ([]model.StudentFeeAssignment, error) {
	var rows []model.StudentFeeAssignment
	err := db.
		Where("student_fee_assignment_student_id = ?", studentID).
		Order("student_fee_assignment_due_date ASC").
		Find(&rows).Error
	return rows, err
}
