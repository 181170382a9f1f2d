package billing

import "math"

// HourlyRate is the flat workshop labour rate. Every started hour is
// billed as a full hour.
const HourlyRate = 75.00

// ComputeCost returns the total labour cost for the hours worked.
// Non-positive input bills as zero; anything else is rounded up to the
// next whole hour. An exact whole number of hours is not rounded up.
func ComputeCost(hoursWorked float64) float64 {
	if hoursWorked <= 0 {
		return 0
	}
	return math.Ceil(hoursWorked) * HourlyRate
}
