package models

import "time"

type SatisfactionLevel string

const (
	SatisfactionVeryDissatisfied SatisfactionLevel = "very_dissatisfied"
	SatisfactionDissatisfied     SatisfactionLevel = "dissatisfied"
	SatisfactionNeutral          SatisfactionLevel = "neutral"
	SatisfactionSatisfied        SatisfactionLevel = "satisfied"
	SatisfactionVerySatisfied    SatisfactionLevel = "very_satisfied"
)

// One feedback row per (ticket, student) pair, enforced by the composite
// unique index on top of the pre-insert existence check.
type AssistanceFeedback struct {
	ID                     uint              `gorm:"primaryKey" json:"id"`
	TicketID               uint              `gorm:"not null;uniqueIndex:uniq_ticket_feedback" json:"ticket_id"`
	StudentID              string            `gorm:"size:20;not null;uniqueIndex:uniq_ticket_feedback;index" json:"student_id"`
	Rating                 int               `gorm:"not null" json:"rating"`
	Satisfaction           SatisfactionLevel `gorm:"type:satisfaction_level;not null" json:"satisfaction"`
	ResponseTimeRating     *int              `json:"response_time_rating"`
	ServiceQualityRating   *int              `json:"service_quality_rating"`
	StaffHelpfulnessRating *int              `json:"staff_helpfulness_rating"`
	Comment                string            `gorm:"type:text" json:"comment"`
	Suggestions            string            `gorm:"type:text" json:"suggestions"`
	WouldRecommend         bool              `gorm:"default:true" json:"would_recommend"`
	CreatedAt              time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AssistanceFeedback) TableName() string { return "assistance_feedback" }

type BorrowingFeedback struct {
	ID                       uint              `gorm:"primaryKey" json:"id"`
	RequestID                uint              `gorm:"not null;uniqueIndex:uniq_request_feedback" json:"request_id"`
	StudentID                string            `gorm:"size:20;not null;uniqueIndex:uniq_request_feedback;index" json:"student_id"`
	Rating                   int               `gorm:"not null" json:"rating"`
	Satisfaction             SatisfactionLevel `gorm:"type:satisfaction_level;not null" json:"satisfaction"`
	EquipmentConditionRating *int              `json:"equipment_condition_rating"`
	ServiceQualityRating     *int              `json:"service_quality_rating"`
	ProcessEfficiencyRating  *int              `json:"process_efficiency_rating"`
	Comment                  string            `gorm:"type:text" json:"comment"`
	Suggestions              string            `gorm:"type:text" json:"suggestions"`
	EquipmentIssues          string            `gorm:"type:text" json:"equipment_issues"`
	WouldRecommend           bool              `gorm:"default:true" json:"would_recommend"`
	CreatedAt                time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BorrowingFeedback) TableName() string { return "borrowing_feedback" }
