package dto

import (
	"time"

	"github.com/garageops/workshop-api/internal/models"
)

// ServiceRecordView is the denormalized read model an actor receives:
// the record itself plus display names and business keys of the car,
// its owner and the assigned mechanic.
type ServiceRecordView struct {
	ID             uint       `json:"id"`
	ServiceDate    time.Time  `json:"service_date"`
	CompletionDate *time.Time `json:"completion_date"`

	Description     string  `json:"description"`
	WorkDescription string  `json:"work_description"`
	HoursWorked     float64 `json:"hours_worked"`
	IsCompleted     bool    `json:"is_completed"`
	TotalCost       float64 `json:"total_cost"`

	CarID                 uint   `json:"car_id"`
	CarRegistrationNumber string `json:"car_registration_number"`
	CarMakeModel          string `json:"car_make_model"`

	MechanicID    uint   `json:"mechanic_id"`
	MechanicName  string `json:"mechanic_name"`
	MechanicEmail string `json:"mechanic_email"`

	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`

	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// AssembleServiceRecordView joins a record with its car, mechanic and
// owning customer. Pure projection: scope filtering is the caller's
// responsibility. Display strings are plain single-space concatenation.
func AssembleServiceRecordView(
	rec *models.ServiceRecord,
	car *models.Car,
	mechanic *models.Mechanic,
	customer *models.Customer,
) ServiceRecordView {
	return ServiceRecordView{
		ID:             rec.ID,
		ServiceDate:    rec.ServiceDate,
		CompletionDate: rec.CompletionDate,

		Description:     rec.Description,
		WorkDescription: rec.WorkDescription,
		HoursWorked:     rec.HoursWorked,
		IsCompleted:     rec.IsCompleted,
		TotalCost:       rec.TotalCost,

		CarID:                 car.ID,
		CarRegistrationNumber: car.RegistrationNumber,
		CarMakeModel:          car.Make + " " + car.Model,

		MechanicID:    mechanic.ID,
		MechanicName:  mechanic.FirstName + " " + mechanic.LastName,
		MechanicEmail: mechanic.Email,

		CustomerID:    customer.ID,
		CustomerName:  customer.FirstName + " " + customer.LastName,
		CustomerEmail: customer.Email,

		CreatedAt: rec.CreatedAt,
		IsActive:  rec.IsActive,
	}
}
