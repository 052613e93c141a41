package models

import (
	"time"

	"gorm.io/datatypes"
)

type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusAssigned   TicketStatus = "assigned"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusCancelled  TicketStatus = "cancelled"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

// CancellableByStudent reports whether the owning student may still cancel.
// Admin-side updates have no transition guard.
func (s TicketStatus) CancellableByStudent() bool {
	return s == TicketStatusPending || s == TicketStatusAssigned
}

type AssistanceType struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Description       string    `gorm:"type:text" json:"description"`
	EstimatedDuration int       `gorm:"default:30" json:"estimated_duration"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type AssistanceTicket struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	TicketNumber     string          `gorm:"size:20;uniqueIndex;not null" json:"ticket_number"`
	StudentID        string          `gorm:"size:20;not null;index" json:"student_id"`
	AssistanceTypeID *uint           `json:"assistance_type_id"`
	Title            string          `gorm:"size:200;not null" json:"title"`
	Description      string          `gorm:"type:text" json:"description"`
	Priority         TicketPriority  `gorm:"type:ticket_priority;default:'medium'" json:"priority"`
	Status           TicketStatus    `gorm:"type:ticket_status;default:'pending'" json:"status"`
	AssignedTo       *uint           `json:"assigned_to"`
	ScheduledDate    *datatypes.Date `json:"scheduled_date"`
	ScheduledTime    *string         `gorm:"type:time" json:"scheduled_time"`
	ResolvedAt       *time.Time      `json:"resolved_at"`
	PhoneRequest     bool            `gorm:"default:false" json:"phone_request"`
	CallerNotes      string          `gorm:"type:text" json:"caller_notes,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Student  *Student        `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Type     *AssistanceType `gorm:"foreignKey:AssistanceTypeID" json:"type,omitempty"`
	Assignee *Admin          `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

// TicketComment is append-only; is_internal comments are kept out of
// student-facing responses.
type TicketComment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TicketID   uint      `gorm:"not null;index" json:"ticket_id"`
	AdminID    *uint     `json:"admin_id"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	IsInternal bool      `gorm:"default:false" json:"is_internal"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Admin *Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}
