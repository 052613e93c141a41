package models

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusDamaged     EquipmentStatus = "damaged"
	EquipmentStatusRetired     EquipmentStatus = "retired"
)

type EquipmentCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (EquipmentCategory) TableName() string { return "equipment_categories" }

// Equipment.QuantityAvailable is adjusted only by borrowing status
// transitions (into active: decrement, to returned: increment) and stays
// within [0, TotalQuantity].
type Equipment struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	CategoryID        uint            `gorm:"not null" json:"category_id"`
	Name              string          `gorm:"size:100;not null" json:"name"`
	Model             string          `gorm:"size:100" json:"model"`
	SerialNumber      string          `gorm:"size:100;uniqueIndex" json:"serial_number"`
	Status            EquipmentStatus `gorm:"type:equipment_status;default:'available'" json:"status"`
	QuantityAvailable int             `gorm:"default:1" json:"quantity_available"`
	TotalQuantity     int             `gorm:"default:1" json:"total_quantity"`
	PhotoObject       string          `gorm:"size:255" json:"photo_object,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`

	Category *EquipmentCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Equipment) TableName() string { return "equipment" }
