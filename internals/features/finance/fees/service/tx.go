// file: internals/features/finance/fees/service/tx.go
package service

import (
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres: serialization_failure & deadlock_detected.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

// runTxWithRetry menjalankan fn dalam satu transaksi; konflik transient
// (deadlock / serialization failure) di-retry SEKALI, sisanya diteruskan.
// Error domain (duplicate, overpayment, dst) tidak pernah di-retry.
func runTxWithRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.Transaction(fn)
	if err != nil && isRetryableTxError(err) {
		log.Printf("[WARN] transient tx conflict, retrying once: %v", err)
		err = db.Transaction(fn)
	}
	return err
}
