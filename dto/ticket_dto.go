package dto

type CreateTicketDTO struct {
	AssistanceTypeID uint   `json:"assistance_type_id" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description" binding:"required"`
	Priority         string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

// PhoneTicketDTO records a ticket taken over the phone on a student's
// behalf. The receiving admin becomes the assignee. Unlike self-service,
// the assistance type may be left empty.
type PhoneTicketDTO struct {
	StudentID        string `json:"student_id" binding:"required"`
	AssistanceTypeID *uint  `json:"assistance_type_id"`
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description" binding:"required"`
	Priority         string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	CallerNotes      string `json:"caller_notes"`
}

type UpdateTicketDTO struct {
	Status        string  `json:"status" binding:"required,oneof=pending assigned in_progress resolved cancelled"`
	AssignedTo    *uint   `json:"assigned_to"`
	ScheduledDate *string `json:"scheduled_date"`
	ScheduledTime *string `json:"scheduled_time"`
	Comment       string  `json:"comment"`
	IsInternal    bool    `json:"is_internal"`
}

type AddCommentDTO struct {
	Comment    string `json:"comment" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}
