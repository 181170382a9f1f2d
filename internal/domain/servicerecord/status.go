package servicerecord

import "github.com/garageops/workshop-api/internal/httperr"

// ===============================
// Service Record State
// ===============================

// A service record is Scheduled from creation until it is completed
// exactly once. Soft delete is an orthogonal flag on either state.

// PlaceholderDescription is the administrative description a record
// carries until someone edits it.
const PlaceholderDescription = "Service scheduled"

// ===============================
// Validations
// ===============================

// CanComplete rejects a second completion of the same record.
func CanComplete(isCompleted bool) error {
	if isCompleted {
		return httperr.ErrBusiness("already_completed")
	}
	return nil
}
