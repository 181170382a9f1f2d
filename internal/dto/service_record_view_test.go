package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/garageops/workshop-api/internal/models"
)

func TestAssembleServiceRecordView_JoinsAllParts(t *testing.T) {
	completed := time.Date(2026, 4, 2, 16, 0, 0, 0, time.UTC)

	rec := &models.ServiceRecord{
		ID:              7,
		CarID:           3,
		MechanicID:      5,
		ServiceDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		CompletionDate:  &completed,
		Description:     "Service scheduled",
		WorkDescription: "timing belt",
		HoursWorked:     3.5,
		IsCompleted:     true,
		TotalCost:       300,
		IsActive:        true,
	}
	car := &models.Car{
		ID:                 3,
		RegistrationNumber: "AB-123-CD",
		Make:               "Volvo",
		Model:              "V60",
	}
	mechanic := &models.Mechanic{
		ID:        5,
		FirstName: "Miro",
		LastName:  "Kovac",
		Email:     "m1@x.com",
	}
	customer := &models.Customer{
		ID:        9,
		FirstName: "Clara",
		LastName:  "Novak",
		Email:     "c1@x.com",
	}

	view := AssembleServiceRecordView(rec, car, mechanic, customer)

	assert.Equal(t, uint(7), view.ID)
	assert.Equal(t, "AB-123-CD", view.CarRegistrationNumber)
	assert.Equal(t, "Volvo V60", view.CarMakeModel)
	assert.Equal(t, "Miro Kovac", view.MechanicName)
	assert.Equal(t, "m1@x.com", view.MechanicEmail)
	assert.Equal(t, "Clara Novak", view.CustomerName)
	assert.Equal(t, "c1@x.com", view.CustomerEmail)
	assert.Equal(t, uint(9), view.CustomerID)
	assert.Equal(t, 300.0, view.TotalCost)
	assert.True(t, view.IsCompleted)
	assert.Equal(t, &completed, view.CompletionDate)
}

func TestAssembleServiceRecordView_EmptyNamePartsKeepSeparator(t *testing.T) {
	rec := &models.ServiceRecord{ID: 1}
	car := &models.Car{Make: "Lada", Model: ""}
	mechanic := &models.Mechanic{FirstName: "", LastName: "Petrov"}
	customer := &models.Customer{FirstName: "Ana", LastName: ""}

	view := AssembleServiceRecordView(rec, car, mechanic, customer)

	assert.Equal(t, "Lada ", view.CarMakeModel)
	assert.Equal(t, " Petrov", view.MechanicName)
	assert.Equal(t, "Ana ", view.CustomerName)
}
