// file: internals/features/finance/fees/service/collection_service_test.go
package service

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		pending int64
		want    model.FeeAssignmentStatus
	}{
		{name: "fully settled", pending: 0, want: model.FeeAssignmentStatusPaid},
		{name: "one unit left", pending: 1, want: model.FeeAssignmentStatusPartial},
		{name: "large remainder", pending: 5_000_000, want: model.FeeAssignmentStatusPartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStatus(tt.pending))
		})
	}
}

func TestCollectRejectsBadInput(t *testing.T) {
	// Jalur validasi murni: gagal sebelum menyentuh DB, jadi db=nil aman.
	t.Run("non positive amount", func(t *testing.T) {
		_, _, err := Collect(nil, CollectInput{Amount: 0})
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "amount", vErr.Field)
	})

	t.Run("missing assignment id", func(t *testing.T) {
		_, _, err := Collect(nil, CollectInput{Amount: 100})
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "assignment_id", vErr.Field)
	})

	t.Run("direct payment without student", func(t *testing.T) {
		_, _, err := Collect(nil, CollectInput{Amount: 100, IsDirectPayment: true})
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "student_id", vErr.Field)
	})
}

func TestCheckPayable(t *testing.T) {
	t.Run("up to pending is allowed", func(t *testing.T) {
		assert.NoError(t, CheckPayable(100_000, 1))
		assert.NoError(t, CheckPayable(100_000, 100_000))
	})

	t.Run("one unit over pending", func(t *testing.T) {
		err := CheckPayable(100_000, 100_001)
		var oErr *OverpaymentError
		require.ErrorAs(t, err, &oErr)
		assert.Equal(t, int64(100_000), oErr.Pending)
		assert.Equal(t, int64(100_001), oErr.Requested)
	})

	t.Run("settled assignment takes nothing", func(t *testing.T) {
		var oErr *OverpaymentError
		assert.ErrorAs(t, CheckPayable(0, 1), &oErr)
	})

	t.Run("zero amount", func(t *testing.T) {
		var vErr *ValidationError
		require.ErrorAs(t, CheckPayable(100_000, 0), &vErr)
		assert.Equal(t, "amount", vErr.Field)
	})

	t.Run("negative amount", func(t *testing.T) {
		var vErr *ValidationError
		assert.ErrorAs(t, CheckPayable(100_000, -500), &vErr)
	})
}

// Dua kasir mengusulkan nomor kwitansi yang sama: INSERT pertama ditolak
// unique index dan (di Postgres) meng-abort transaksi. Rollback ke savepoint
// harus memulihkannya sehingga attempt kedua membaca ulang sequence dan commit.
func TestInsertCollectionRetriesAfterDuplicateReceipt(t *testing.T) {
	gdb, mock := newMockDB(t)

	dayRows := func(last string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"fee_collection_receipt_number"}).AddRow(last)
	}

	mock.ExpectBegin()
	// attempt 1: usul max+1, kalah race saat INSERT
	mock.ExpectQuery(`SELECT "fee_collection_receipt_number" FROM "fee_collections"`).
		WillReturnRows(dayRows(FormatReceiptNumber(time.Now(), 41)))
	mock.ExpectExec("SAVEPOINT sp_receipt").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "fee_collections"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_fee_collections_receipt"})
	mock.ExpectExec("ROLLBACK TO SAVEPOINT sp_receipt").
		WillReturnResult(sqlmock.NewResult(0, 0))
	// attempt 2: baca ulang (kwitansi rival sudah tercommit), lalu sukses
	mock.ExpectQuery(`SELECT "fee_collection_receipt_number" FROM "fee_collections"`).
		WillReturnRows(dayRows(FormatReceiptNumber(time.Now(), 42)))
	mock.ExpectExec("SAVEPOINT sp_receipt").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "fee_collections"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_collection_id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	var col *model.FeeCollection
	err := gdb.Transaction(func(tx *gorm.DB) error {
		c, err := insertCollection(tx, uuid.New(), nil, CollectInput{
			Amount:        150_000,
			PaymentMethod: model.FeePaymentMethodCash,
			CollectedBy:   uuid.New(),
		})
		col = c
		return err
	})

	require.NoError(t, err)
	require.NotNil(t, col)
	// attempt kedua melompati nomor yang sempat diusulkan: 42 + 1 + 1
	assert.True(t, strings.HasSuffix(col.FeeCollectionReceiptNumber, "-000044"),
		"got %s", col.FeeCollectionReceiptNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Direct payment untuk siswa yang tidak ada harus ditolak sebelum structure
// sintetis / assignment / collection sempat tertulis.
func TestCollectDirectRejectsUnknownStudent(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "fee_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT "student_academic_year_id" FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_academic_year_id"}))
	mock.ExpectRollback()

	_, _, err := Collect(gdb, CollectInput{
		IsDirectPayment: true,
		StudentID:       uuid.New(),
		CategoryID:      uuid.New(),
		Amount:          250_000,
		CollectedBy:     uuid.New(),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "student_id", vErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}
