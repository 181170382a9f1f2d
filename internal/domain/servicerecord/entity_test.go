package servicerecord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageops/workshop-api/internal/domain/billing"
	"github.com/garageops/workshop-api/internal/httperr"
)

var (
	serviceDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	completedAt = time.Date(2026, 3, 12, 14, 30, 0, 0, time.UTC)
	editedAt    = time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)
)

func TestNewScheduled_InitialState(t *testing.T) {
	rec := NewScheduled(1, 2, serviceDate)

	assert.Equal(t, uint(1), rec.CarID)
	assert.Equal(t, uint(2), rec.MechanicID)
	assert.Equal(t, serviceDate, rec.ServiceDate)
	assert.Equal(t, PlaceholderDescription, rec.Description)
	assert.Empty(t, rec.WorkDescription)
	assert.False(t, rec.IsCompleted)
	assert.Nil(t, rec.CompletionDate)
	assert.Equal(t, 0.0, rec.HoursWorked)
	assert.Equal(t, 0.0, rec.TotalCost)
	assert.True(t, rec.IsActive)
}

func TestComplete_SetsWorkAndBills(t *testing.T) {
	rec := NewScheduled(1, 2, serviceDate)

	err := Complete(rec, "replaced brake pads", 2.5, completedAt)
	require.NoError(t, err)

	assert.True(t, rec.IsCompleted)
	assert.Equal(t, "replaced brake pads", rec.WorkDescription)
	assert.Equal(t, 2.5, rec.HoursWorked)
	require.NotNil(t, rec.CompletionDate)
	assert.Equal(t, completedAt, *rec.CompletionDate)
	assert.Equal(t, billing.ComputeCost(2.5), rec.TotalCost)
}

func TestComplete_ZeroHoursIsAllowed(t *testing.T) {
	rec := NewScheduled(1, 2, serviceDate)

	err := Complete(rec, "warranty work, no charge", 0, completedAt)
	require.NoError(t, err)

	assert.True(t, rec.IsCompleted)
	assert.Equal(t, 0.0, rec.TotalCost)
}

func TestComplete_SecondCallIsRejectedAndChangesNothing(t *testing.T) {
	rec := NewScheduled(1, 2, serviceDate)
	require.NoError(t, Complete(rec, "first pass", 1.5, completedAt))

	firstCost := rec.TotalCost
	firstDate := *rec.CompletionDate

	err := Complete(rec, "second pass", 8, editedAt)
	assert.True(t, httperr.IsBusiness(err, "already_completed"))

	assert.Equal(t, firstCost, rec.TotalCost)
	assert.Equal(t, firstDate, *rec.CompletionDate)
	assert.Equal(t, "first pass", rec.WorkDescription)
	assert.Equal(t, 1.5, rec.HoursWorked)
}

func TestApplyUpdate_CompletionTransitionBills(t *testing.T) {
	rec := NewScheduled(1, 2, serviceDate)

	ApplyUpdate(rec, "full inspection", 3.2, true, completedAt)

	assert.True(t, rec.IsCompleted)
	assert.Equal(t, "full inspection", rec.Description)
	assert.Equal(t, "full inspection", rec.WorkDescription)
	require.NotNil(t, rec.CompletionDate)
	assert.Equal(t, completedAt, *rec.CompletionDate)
	assert.Equal(t, billing.ComputeCost(3.2), rec.TotalCost)
}

func TestApplyUpdate_WithoutCompletionDoesNotBill(t *testing.T) {
	rec := NewScheduled(1, 2, serviceDate)

	ApplyUpdate(rec, "waiting on parts", 1.0, false, editedAt)

	assert.False(t, rec.IsCompleted)
	assert.Nil(t, rec.CompletionDate)
	assert.Equal(t, 0.0, rec.TotalCost)
	assert.Equal(t, 1.0, rec.HoursWorked)
}

func TestApplyUpdate_NeverRebillsACompletedRecord(t *testing.T) {
	rec := NewScheduled(1, 2, serviceDate)
	ApplyUpdate(rec, "engine overhaul", 4, true, completedAt)

	firstCost := rec.TotalCost
	firstDate := *rec.CompletionDate

	// different hours, flag still true: hours overwritten, cost frozen
	ApplyUpdate(rec, "engine overhaul + test drive", 9, true, editedAt)

	assert.Equal(t, 9.0, rec.HoursWorked)
	assert.Equal(t, firstCost, rec.TotalCost)
	assert.Equal(t, firstDate, *rec.CompletionDate)
}

func TestSoftDelete_KeepsCompletionStateAndCost(t *testing.T) {
	rec := NewScheduled(1, 2, serviceDate)
	require.NoError(t, Complete(rec, "oil change", 0.5, completedAt))

	SoftDelete(rec)

	assert.False(t, rec.IsActive)
	assert.True(t, rec.IsCompleted)
	assert.Equal(t, billing.ComputeCost(0.5), rec.TotalCost)
}
