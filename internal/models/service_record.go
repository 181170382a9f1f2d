package models

import "time"

type ServiceRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CarID uint `json:"car_id"`
	Car   Car  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"car"`

	MechanicID uint     `json:"mechanic_id"`
	Mechanic   Mechanic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"mechanic"`

	ServiceDate    time.Time  `json:"service_date"`
	CompletionDate *time.Time `json:"completion_date"`

	Description     string `gorm:"size:1000" json:"description"`
	WorkDescription string `gorm:"size:1000" json:"work_description"`

	HoursWorked float64 `json:"hours_worked"`
	IsCompleted bool    `gorm:"default:false" json:"is_completed"`
	TotalCost   float64 `gorm:"type:decimal(18,2)" json:"total_cost"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
