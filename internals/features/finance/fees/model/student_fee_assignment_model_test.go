// file: internals/features/finance/fees/model/student_fee_assignment_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  FeeAssignmentStatus
		dueDate time.Time
		want    bool
	}{
		{name: "pending past due", status: FeeAssignmentStatusPending, dueDate: now.AddDate(0, 0, -3), want: true},
		{name: "partial past due", status: FeeAssignmentStatusPartial, dueDate: now.AddDate(0, 0, -1), want: true},
		{name: "pending due today is not overdue", status: FeeAssignmentStatusPending, dueDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), want: false},
		{name: "pending due tomorrow", status: FeeAssignmentStatusPending, dueDate: now.AddDate(0, 0, 1), want: false},
		{name: "paid never overdue", status: FeeAssignmentStatusPaid, dueDate: now.AddDate(0, 0, -30), want: false},
		{name: "cancelled never overdue", status: FeeAssignmentStatusCancelled, dueDate: now.AddDate(0, 0, -30), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := StudentFeeAssignment{
				StudentFeeAssignmentStatus:  tt.status,
				StudentFeeAssignmentDueDate: tt.dueDate,
			}
			assert.Equal(t, tt.want, m.IsOverdue(now))
		})
	}
}

// Batas overdue mengikuti tanggal kalender di zona waktu pemanggil, bukan
// hari UTC. Jam 00:30 WIB tanggal 11 sudah lewat due date tanggal 10 meskipun
// UTC masih tanggal 10.
func TestIsOverdueUsesLocalCivilDate(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC) // kolom date: midnight UTC

	m := StudentFeeAssignment{
		StudentFeeAssignmentStatus:  FeeAssignmentStatusPending,
		StudentFeeAssignmentDueDate: due,
	}

	instant := time.Date(2026, 1, 10, 17, 30, 0, 0, time.UTC)

	assert.False(t, m.IsOverdue(instant), "tanggal 10 UTC belum overdue")
	assert.True(t, m.IsOverdue(instant.In(wib)), "instant yang sama sudah tanggal 11 di WIB")

	// Sore hari WIB di tanggal due sendiri tetap belum overdue.
	sameDay := time.Date(2026, 1, 10, 16, 0, 0, 0, wib)
	assert.False(t, m.IsOverdue(sameDay))
}
