package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	mechanicEmail = "m1@x.com"
	customerEmail = "c1@x.com"
)

func TestScopeFor_VisibilityMatrix(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"owning customer sees it", Actor{RoleCustomer, "c1@x.com"}, true},
		{"other customer does not", Actor{RoleCustomer, "c2@x.com"}, false},
		{"assigned mechanic sees it", Actor{RoleMechanic, "m1@x.com"}, true},
		{"other mechanic does not", Actor{RoleMechanic, "m2@x.com"}, false},
		{"administrator sees everything", Actor{RoleAdministrator, "anyone@x.com"}, true},
		{"unknown role sees nothing", Actor{Role("auditor"), "c1@x.com"}, false},
		{"empty role sees nothing", Actor{Role(""), "c1@x.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScopeFor(tt.actor)(mechanicEmail, customerEmail)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScopeFor_CustomerIdentityIsNotMatchedAgainstMechanic(t *testing.T) {
	// a customer whose email happens to equal the mechanic's must not
	// gain visibility through the wrong field
	actor := Actor{RoleCustomer, mechanicEmail}
	assert.False(t, ScopeFor(actor)(mechanicEmail, customerEmail))
}

func TestCanManageRecords_AdministratorOnly(t *testing.T) {
	assert.True(t, CanManageRecords(Actor{RoleAdministrator, "a@x.com"}))
	assert.False(t, CanManageRecords(Actor{RoleMechanic, mechanicEmail}))
	assert.False(t, CanManageRecords(Actor{RoleCustomer, customerEmail}))
	assert.False(t, CanManageRecords(Actor{Role("auditor"), "a@x.com"}))
}

func TestCanCompleteRecord_AssignedMechanicOnly(t *testing.T) {
	assert.True(t, CanCompleteRecord(Actor{RoleMechanic, mechanicEmail}, mechanicEmail))
	assert.False(t, CanCompleteRecord(Actor{RoleMechanic, "m2@x.com"}, mechanicEmail))

	// administrators use the general edit, not the completion action
	assert.False(t, CanCompleteRecord(Actor{RoleAdministrator, mechanicEmail}, mechanicEmail))
	assert.False(t, CanCompleteRecord(Actor{RoleCustomer, mechanicEmail}, mechanicEmail))
}
