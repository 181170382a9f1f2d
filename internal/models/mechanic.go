package models

import "time"

type Mechanic struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName      string `gorm:"size:100;not null" json:"first_name"`
	LastName       string `gorm:"size:100;not null" json:"last_name"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone          string `gorm:"size:20" json:"phone"`
	Specialization string `gorm:"size:200" json:"specialization"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
