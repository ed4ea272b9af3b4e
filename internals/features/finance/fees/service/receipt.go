// file: internals/features/finance/fees/service/receipt.go
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
)

const receiptPrefix = "RCP"

// FormatReceiptNumber menyusun nomor kwitansi: RCP-YYYYMMDD-NNNNNN.
func FormatReceiptNumber(date time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%06d", receiptPrefix, date.Format("20060102"), seq)
}

// ParseReceiptSeq mengambil sequence dari nomor kwitansi; 0 kalau bentuknya lain.
func ParseReceiptSeq(receipt string) int64 {
	parts := strings.Split(receipt, "-")
	if len(parts) != 3 {
		return 0
	}
	n, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// nextReceiptNumber mengusulkan nomor berikutnya untuk hari ini berdasarkan
// nomor tertinggi yang sudah tercommit. Usulan ini TIDAK dianggap final:
// unique constraint di fee_collections yang memutuskan, dan collision
// di-retry oleh pemanggil dengan attempt berikutnya.
func nextReceiptNumber(tx *gorm.DB, date time.Time, attempt int64) (string, error) {
	dayPrefix := fmt.Sprintf("%s-%s-%%", receiptPrefix, date.Format("20060102"))

	// length ikut di-sort: begitu sequence harian lewat 999999 suffix-nya jadi
	// 7 digit, dan secara leksikografis "1000000" < "999999". Urut panjang dulu
	// supaya nomor tertinggi tetap ketemu.
	var lasts []string
	err := tx.Model(&model.FeeCollection{}).
		Where("fee_collection_receipt_number LIKE ?", dayPrefix).
		Order("length(fee_collection_receipt_number) DESC, fee_collection_receipt_number DESC").
		Limit(1).
		Pluck("fee_collection_receipt_number", &lasts).Error
	if err != nil {
		return "", err
	}

	var last string
	if len(lasts) > 0 {
		last = lasts[0]
	}
	seq := ParseReceiptSeq(last) + 1 + attempt
	return FormatReceiptNumber(date, seq), nil
}
