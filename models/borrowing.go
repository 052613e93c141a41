package models

import (
	"time"

	"gorm.io/datatypes"
)

type BorrowingStatus string

const (
	BorrowingStatusPending  BorrowingStatus = "pending"
	BorrowingStatusApproved BorrowingStatus = "approved"
	BorrowingStatusRejected BorrowingStatus = "rejected"
	BorrowingStatusActive   BorrowingStatus = "active"
	BorrowingStatusReturned BorrowingStatus = "returned"
	BorrowingStatusOverdue  BorrowingStatus = "overdue"
)

type BorrowingRequest struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	RequestNumber     string          `gorm:"size:20;uniqueIndex;not null" json:"request_number"`
	StudentID         string          `gorm:"size:20;not null;index" json:"student_id"`
	EquipmentID       uint            `gorm:"not null" json:"equipment_id"`
	QuantityRequested int             `gorm:"default:1" json:"quantity_requested"`
	Purpose           string          `gorm:"type:text;not null" json:"purpose"`
	RequestedFrom     datatypes.Date  `gorm:"not null" json:"requested_from"`
	RequestedTo       datatypes.Date  `gorm:"not null" json:"requested_to"`
	Status            BorrowingStatus `gorm:"type:borrowing_status;default:'pending'" json:"status"`
	ApprovedBy        *uint           `json:"approved_by"`
	ApprovedAt        *time.Time      `json:"approved_at"`
	BorrowedAt        *time.Time      `json:"borrowed_at"`
	DueDate           *time.Time      `json:"due_date"`
	ReturnedAt        *time.Time      `json:"returned_at"`
	Notes             string          `gorm:"type:text" json:"notes"`
	PhoneRequest      bool            `gorm:"default:false" json:"phone_request"`
	CallerNotes       string          `gorm:"type:text" json:"caller_notes,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Student   *Student   `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Equipment *Equipment `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty"`
	Approver  *Admin     `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
}

// InventoryDelta returns the quantity_available adjustment for a status
// change. Deltas key on the (from, to) pair, not the new value alone, so
// replaying the same update is a no-op on inventory.
func InventoryDelta(from, to BorrowingStatus, quantity int) int {
	switch {
	case to == BorrowingStatusActive && from != BorrowingStatusActive:
		return -quantity
	case to == BorrowingStatusReturned && (from == BorrowingStatusActive || from == BorrowingStatusOverdue):
		return quantity
	default:
		return 0
	}
}
