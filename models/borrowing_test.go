package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryDelta(t *testing.T) {
	tests := []struct {
		name string
		from BorrowingStatus
		to   BorrowingStatus
		want int
	}{
		{"approved to active takes stock", BorrowingStatusApproved, BorrowingStatusActive, -3},
		{"pending to active takes stock", BorrowingStatusPending, BorrowingStatusActive, -3},
		{"active to returned restocks", BorrowingStatusActive, BorrowingStatusReturned, 3},
		{"overdue to returned restocks", BorrowingStatusOverdue, BorrowingStatusReturned, 3},
		{"active to active is neutral", BorrowingStatusActive, BorrowingStatusActive, 0},
		{"active to overdue is neutral", BorrowingStatusActive, BorrowingStatusOverdue, 0},
		{"pending to approved is neutral", BorrowingStatusPending, BorrowingStatusApproved, 0},
		{"pending to rejected is neutral", BorrowingStatusPending, BorrowingStatusRejected, 0},
		{"pending to returned is neutral", BorrowingStatusPending, BorrowingStatusReturned, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InventoryDelta(tt.from, tt.to, 3))
		})
	}
}

func TestTicketStatusCancellableByStudent(t *testing.T) {
	assert.True(t, TicketStatusPending.CancellableByStudent())
	assert.True(t, TicketStatusAssigned.CancellableByStudent())
	assert.False(t, TicketStatusInProgress.CancellableByStudent())
	assert.False(t, TicketStatusResolved.CancellableByStudent())
	assert.False(t, TicketStatusCancelled.CancellableByStudent())
}
