package dto

type CreateBorrowingDTO struct {
	EquipmentID   uint   `json:"equipment_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	Purpose       string `json:"purpose" binding:"required"`
	RequestedFrom string `json:"requested_from" binding:"required"`
	RequestedTo   string `json:"requested_to" binding:"required"`
}

type PhoneBorrowingDTO struct {
	StudentID     string `json:"student_id" binding:"required"`
	EquipmentID   uint   `json:"equipment_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	Purpose       string `json:"purpose" binding:"required"`
	RequestedFrom string `json:"requested_from" binding:"required"`
	RequestedTo   string `json:"requested_to" binding:"required"`
	CallerNotes   string `json:"caller_notes"`
}

type UpdateBorrowingDTO struct {
	Status     string  `json:"status" binding:"required,oneof=pending approved rejected active returned overdue"`
	Notes      string  `json:"notes"`
	BorrowedAt *string `json:"borrowed_at"`
	DueDate    *string `json:"due_date"`
}
