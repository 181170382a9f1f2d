package access

// ===============================
// Actor & Roles
// ===============================

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleMechanic      Role = "mechanic"
	RoleCustomer      Role = "customer"
)

// Actor is the request-scoped identity every scope check receives.
// It is built from the verified token claims, never from server state.
type Actor struct {
	Role  Role
	Email string
}

// Predicate decides whether a single record is inside an actor's scope,
// given the emails of the record's assigned mechanic and the owning
// customer of its car.
type Predicate func(mechanicEmail, customerEmail string) bool

// ===============================
// View scope
// ===============================

// ScopeFor returns the visibility predicate for an actor.
// Administrators see every active record, mechanics their assigned
// records, customers the records of their own cars. Unknown roles match
// nothing.
func ScopeFor(actor Actor) Predicate {
	switch actor.Role {
	case RoleAdministrator:
		return func(string, string) bool { return true }
	case RoleMechanic:
		return func(mechanicEmail, _ string) bool {
			return mechanicEmail == actor.Email
		}
	case RoleCustomer:
		return func(_, customerEmail string) bool {
			return customerEmail == actor.Email
		}
	default:
		return func(string, string) bool { return false }
	}
}

// ===============================
// Mutation scope
// ===============================

// CanManageRecords covers create, general edit and soft delete.
func CanManageRecords(actor Actor) bool {
	return actor.Role == RoleAdministrator
}

// CanCompleteRecord covers the completion action, restricted to the
// record's assigned mechanic. Administrators go through the general
// edit instead.
func CanCompleteRecord(actor Actor, assignedMechanicEmail string) bool {
	return actor.Role == RoleMechanic && actor.Email == assignedMechanicEmail
}

// CanManageFleet covers customer, mechanic and car administration.
func CanManageFleet(actor Actor) bool {
	return actor.Role == RoleAdministrator
}
