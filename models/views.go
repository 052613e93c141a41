package models

import "time"

// Read models backed by the SQL views created in db.createViews. The admin
// feedback browser reads these instead of re-joining five tables per page.

type AssistanceFeedbackSummary struct {
	ID                     uint              `json:"id"`
	TicketID               uint              `json:"ticket_id"`
	TicketNumber           string            `json:"ticket_number"`
	Title                  string            `json:"title"`
	PhoneRequest           bool              `json:"phone_request"`
	Rating                 int               `json:"rating"`
	Satisfaction           SatisfactionLevel `json:"satisfaction"`
	ResponseTimeRating     *int              `json:"response_time_rating"`
	ServiceQualityRating   *int              `json:"service_quality_rating"`
	StaffHelpfulnessRating *int              `json:"staff_helpfulness_rating"`
	Comment                string            `json:"comment"`
	WouldRecommend         bool              `json:"would_recommend"`
	FeedbackDate           time.Time         `json:"feedback_date"`
	StudentName            string            `json:"student_name"`
	Course                 string            `json:"course"`
	AssignedToName         *string           `json:"assigned_to_name"`
	AssistanceType         *string           `json:"assistance_type"`
}

func (AssistanceFeedbackSummary) TableName() string { return "assistance_feedback_summary" }

type BorrowingFeedbackSummary struct {
	ID                       uint              `json:"id"`
	RequestID                uint              `json:"request_id"`
	RequestNumber            string            `json:"request_number"`
	PhoneRequest             bool              `json:"phone_request"`
	EquipmentName            string            `json:"equipment_name"`
	Model                    string            `json:"model"`
	Rating                   int               `json:"rating"`
	Satisfaction             SatisfactionLevel `json:"satisfaction"`
	EquipmentConditionRating *int              `json:"equipment_condition_rating"`
	ServiceQualityRating     *int              `json:"service_quality_rating"`
	ProcessEfficiencyRating  *int              `json:"process_efficiency_rating"`
	Comment                  string            `json:"comment"`
	EquipmentIssues          string            `json:"equipment_issues"`
	WouldRecommend           bool              `json:"would_recommend"`
	FeedbackDate             time.Time         `json:"feedback_date"`
	StudentName              string            `json:"student_name"`
	Course                   string            `json:"course"`
	ApprovedByName           *string           `json:"approved_by_name"`
}

func (BorrowingFeedbackSummary) TableName() string { return "borrowing_feedback_summary" }
