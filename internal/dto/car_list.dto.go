package dto

import (
	"time"

	"github.com/garageops/workshop-api/internal/models"
)

type CarListDTO struct {
	ID                 uint      `json:"id"`
	RegistrationNumber string    `json:"registration_number"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	Color              string    `json:"color"`
	Year               int       `json:"year"`
	CustomerID         uint      `json:"customer_id"`
	CustomerName       string    `json:"customer_name"`
	CustomerEmail      string    `json:"customer_email"`
	RegistrationDate   time.Time `json:"registration_date"`
	ServiceRecordCount int       `json:"service_record_count"`
	CreatedAt          time.Time `json:"created_at"`
	IsActive           bool      `json:"is_active"`
}

func NewCarListDTO(car *models.Car, serviceRecordCount int) CarListDTO {
	return CarListDTO{
		ID:                 car.ID,
		RegistrationNumber: car.RegistrationNumber,
		Make:               car.Make,
		Model:              car.Model,
		Color:              car.Color,
		Year:               car.Year,
		CustomerID:         car.CustomerID,
		CustomerName:       car.Customer.FirstName + " " + car.Customer.LastName,
		CustomerEmail:      car.Customer.Email,
		RegistrationDate:   car.RegistrationDate,
		ServiceRecordCount: serviceRecordCount,
		CreatedAt:          car.CreatedAt,
		IsActive:           car.IsActive,
	}
}
