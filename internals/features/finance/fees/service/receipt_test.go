// file: internals/features/finance/fees/service/receipt_test.go
package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReceiptNumber(t *testing.T) {
	date := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		seq  int64
		want string
	}{
		{name: "first of the day", seq: 1, want: "RCP-20260314-000001"},
		{name: "zero padded", seq: 42, want: "RCP-20260314-000042"},
		{name: "six digits full", seq: 999999, want: "RCP-20260314-999999"},
		{name: "overflow widens, stays parseable", seq: 1000000, want: "RCP-20260314-1000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatReceiptNumber(date, tt.seq))
		})
	}
}

func TestParseReceiptSeq(t *testing.T) {
	tests := []struct {
		name    string
		receipt string
		want    int64
	}{
		{name: "normal", receipt: "RCP-20260314-000042", want: 42},
		{name: "wide seq", receipt: "RCP-20260314-1000000", want: 1000000},
		{name: "empty", receipt: "", want: 0},
		{name: "wrong segment count", receipt: "RCP-000042", want: 0},
		{name: "non numeric seq", receipt: "RCP-20260314-abc", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReceiptSeq(tt.receipt))
		})
	}
}

func TestReceiptRoundTrip(t *testing.T) {
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	for _, seq := range []int64{1, 7, 123456} {
		got := ParseReceiptSeq(FormatReceiptNumber(date, seq))
		assert.Equal(t, seq, got)
	}
}

// Sequence harian yang sudah 7 digit harus tetap ketemu sebagai maksimum.
// ORDER BY leksikografis murni menaruh "1000000" di bawah "999999", dan
// generator akan mengusulkan ulang nomor yang sudah terpakai sampai kehabisan
// attempt — makanya length ikut di-sort.
func TestNextReceiptNumberFindsWideSequences(t *testing.T) {
	gdb, mock := newMockDB(t)
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT "fee_collection_receipt_number" FROM "fee_collections".*ORDER BY length\(fee_collection_receipt_number\) DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_collection_receipt_number"}).
			AddRow("RCP-20260831-1000000"))

	got, err := nextReceiptNumber(gdb, day, 0)
	require.NoError(t, err)
	assert.Equal(t, "RCP-20260831-1000001", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
