package models

import "time"

type Car struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RegistrationNumber string `gorm:"size:20;uniqueIndex;not null" json:"registration_number"`
	Make               string `gorm:"size:100;not null" json:"make"`
	Model              string `gorm:"size:100;not null" json:"model"`
	Color              string `gorm:"size:50" json:"color"`
	Year               int    `json:"year"`
	Description        string `gorm:"size:500" json:"description"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	RegistrationDate time.Time `json:"registration_date"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
