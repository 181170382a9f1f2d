package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCost_NonPositiveHoursAreFree(t *testing.T) {
	assert.Equal(t, 0.0, ComputeCost(0))
	assert.Equal(t, 0.0, ComputeCost(-1.5))
	assert.Equal(t, 0.0, ComputeCost(-0.0001))
}

func TestComputeCost_RoundsUpToWholeHours(t *testing.T) {
	assert.Equal(t, 1*HourlyRate, ComputeCost(0.1))
	assert.Equal(t, 3*HourlyRate, ComputeCost(2.01))
	assert.Equal(t, 3*HourlyRate, ComputeCost(2.5))
	assert.Equal(t, 3*HourlyRate, ComputeCost(2.99))
}

func TestComputeCost_ExactHoursAreNotRoundedUp(t *testing.T) {
	assert.Equal(t, 1*HourlyRate, ComputeCost(1.0))
	assert.Equal(t, 3*HourlyRate, ComputeCost(3.0))
	assert.Equal(t, 100*HourlyRate, ComputeCost(100.0))
}

func TestComputeCost_MonotonicallyNonDecreasing(t *testing.T) {
	hours := []float64{-2, -0.5, 0, 0.1, 0.5, 1, 1.01, 2, 2.5, 3, 3.0001, 10}

	prev := ComputeCost(hours[0])
	for _, h := range hours[1:] {
		cost := ComputeCost(h)
		assert.GreaterOrEqual(t, cost, prev, "cost decreased at %v hours", h)
		prev = cost
	}
}

func TestHourlyRate_Value(t *testing.T) {
	assert.Equal(t, 75.00, float64(HourlyRate))
}
