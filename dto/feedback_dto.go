package dto

type AssistanceFeedbackDTO struct {
	TicketID               uint   `json:"ticket_id" binding:"required"`
	Rating                 int    `json:"rating" binding:"required,min=1,max=5"`
	Satisfaction           string `json:"satisfaction" binding:"required,oneof=very_dissatisfied dissatisfied neutral satisfied very_satisfied"`
	ResponseTimeRating     *int   `json:"response_time_rating" binding:"omitempty,min=1,max=5"`
	ServiceQualityRating   *int   `json:"service_quality_rating" binding:"omitempty,min=1,max=5"`
	StaffHelpfulnessRating *int   `json:"staff_helpfulness_rating" binding:"omitempty,min=1,max=5"`
	Comment                string `json:"comment"`
	Suggestions            string `json:"suggestions"`
	WouldRecommend         *bool  `json:"would_recommend"`
}

type BorrowingFeedbackDTO struct {
	RequestID                uint   `json:"request_id" binding:"required"`
	Rating                   int    `json:"rating" binding:"required,min=1,max=5"`
	Satisfaction             string `json:"satisfaction" binding:"required,oneof=very_dissatisfied dissatisfied neutral satisfied very_satisfied"`
	EquipmentConditionRating *int   `json:"equipment_condition_rating" binding:"omitempty,min=1,max=5"`
	ServiceQualityRating     *int   `json:"service_quality_rating" binding:"omitempty,min=1,max=5"`
	ProcessEfficiencyRating  *int   `json:"process_efficiency_rating" binding:"omitempty,min=1,max=5"`
	Comment                  string `json:"comment"`
	Suggestions              string `json:"suggestions"`
	EquipmentIssues          string `json:"equipment_issues"`
	WouldRecommend           *bool  `json:"would_recommend"`
}

type FeedbackFilterDTO struct {
	Kind         string `form:"kind" binding:"omitempty,oneof=assistance borrowing"`
	Satisfaction string `form:"satisfaction" binding:"omitempty,oneof=very_dissatisfied dissatisfied neutral satisfied very_satisfied"`
	MinRating    int    `form:"min_rating" binding:"omitempty,min=1,max=5"`
}
