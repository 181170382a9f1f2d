package servicerecord

import (
	"time"

	"github.com/garageops/workshop-api/internal/domain/billing"
	"github.com/garageops/workshop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NewScheduled builds a record in its initial state: no work done, no
// cost, active.
func NewScheduled(carID, mechanicID uint, serviceDate time.Time) *models.ServiceRecord {
	return &models.ServiceRecord{
		CarID:           carID,
		MechanicID:      mechanicID,
		ServiceDate:     serviceDate,
		Description:     PlaceholderDescription,
		WorkDescription: "",
		HoursWorked:     0,
		IsCompleted:     false,
		CompletionDate:  nil,
		TotalCost:       0,
		IsActive:        true,
	}
}

// Complete moves a record to its completed state and bills it. Returns
// already_completed if the record was completed before; the stored cost
// and completion date are left untouched in that case.
func Complete(rec *models.ServiceRecord, workDescription string, hoursWorked float64, now time.Time) error {
	if err := CanComplete(rec.IsCompleted); err != nil {
		return err
	}

	rec.WorkDescription = workDescription
	rec.HoursWorked = hoursWorked
	rec.IsCompleted = true
	rec.CompletionDate = &now
	rec.TotalCost = billing.ComputeCost(hoursWorked)
	return nil
}

// ApplyUpdate overwrites the editable fields of a record. Billing
// happens only on the transition from incomplete to complete; a record
// that was already completed keeps its cost and completion date no
// matter what hours are submitted.
func ApplyUpdate(rec *models.ServiceRecord, description string, hoursWorked float64, isCompleted bool, now time.Time) {
	wasCompleted := rec.IsCompleted

	rec.Description = description
	rec.WorkDescription = description
	rec.HoursWorked = hoursWorked
	rec.IsCompleted = isCompleted

	if isCompleted && !wasCompleted {
		rec.CompletionDate = &now
		rec.TotalCost = billing.ComputeCost(hoursWorked)
	}
}

// SoftDelete deactivates a record without touching its completion state
// or stored cost.
func SoftDelete(rec *models.ServiceRecord) {
	rec.IsActive = false
}
