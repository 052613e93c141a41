package models

import "time"

type AdminRole string

const (
	RoleSuperAdmin    AdminRole = "super_admin"
	RoleLabTechnician AdminRole = "lab_technician"
)

type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Role      AdminRole `gorm:"type:admin_role;default:'lab_technician'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
