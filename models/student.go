package models

import "time"

// Student rows come from the registrar import (db.Seed during development).
// Students are identified by the public student_id, not the surrogate key;
// tickets and borrowing requests reference student_id directly.
type Student struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   string    `gorm:"size:20;uniqueIndex;not null" json:"student_id"`
	Email       string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FirstName   string    `gorm:"size:50;not null" json:"first_name"`
	LastName    string    `gorm:"size:50;not null" json:"last_name"`
	Course      string    `gorm:"size:100" json:"course"`
	YearOfStudy int       `json:"year_of_study"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
