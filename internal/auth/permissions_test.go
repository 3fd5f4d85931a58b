package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"epicevents/internal/models"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		name string
		role models.UserRole
		op   Operation
		want bool
	}{
		{"seller creates client", models.UserRoleSeller, OpClientCreate, true},
		{"seller updates contract", models.UserRoleSeller, OpContractUpdate, true},
		{"seller creates event", models.UserRoleSeller, OpEventCreate, true},
		{"seller cannot update event", models.UserRoleSeller, OpEventUpdate, false},
		{"seller cannot reassign client", models.UserRoleSeller, OpClientReassign, false},
		{"seller cannot create user", models.UserRoleSeller, OpUserCreate, false},

		{"support updates event", models.UserRoleSupport, OpEventUpdate, true},
		{"support deletes event", models.UserRoleSupport, OpEventDelete, true},
		{"support cannot create client", models.UserRoleSupport, OpClientCreate, false},
		{"support cannot create contract", models.UserRoleSupport, OpContractCreate, false},
		{"support cannot create event", models.UserRoleSupport, OpEventCreate, false},

		{"manager reassigns client", models.UserRoleManager, OpClientReassign, true},
		{"manager updates event", models.UserRoleManager, OpEventUpdate, true},
		{"manager creates user", models.UserRoleManager, OpUserCreate, true},
		{"manager cannot create client", models.UserRoleManager, OpClientCreate, false},
		{"manager cannot create contract", models.UserRoleManager, OpContractCreate, false},

		{"unknown role denied", models.UserRole("intern"), OpClientCreate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerform(tt.role, tt.op))
		})
	}
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(models.UserRoleSeller))
	assert.NoError(t, ValidateRole(models.UserRoleSupport))
	assert.NoError(t, ValidateRole(models.UserRoleManager))
	assert.Error(t, ValidateRole(models.UserRole("admin")))
	assert.Error(t, ValidateRole(models.UserRole("")))
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, IsSeller(&Claims{Role: models.UserRoleSeller}))
	assert.False(t, IsSeller(&Claims{Role: models.UserRoleSupport}))
	assert.False(t, IsSeller(nil))

	assert.True(t, IsSupport(&Claims{Role: models.UserRoleSupport}))
	assert.True(t, IsManager(&Claims{Role: models.UserRoleManager}))
	assert.False(t, IsManager(nil))
}
