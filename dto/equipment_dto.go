package dto

type CreateEquipmentDTO struct {
	CategoryID   uint   `json:"category_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
}

type UpdateEquipmentStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=available maintenance damaged retired"`
}
