package auth

import (
	"errors"

	"epicevents/internal/models"
)

// Operation is a mutating action a role may or may not perform. Reads are
// open to every authenticated user and never appear here.
type Operation string

const (
	OpClientCreate   Operation = "clients:create"
	OpClientUpdate   Operation = "clients:update"
	OpClientDelete   Operation = "clients:delete"
	OpClientReassign Operation = "clients:reassign"

	OpContractCreate Operation = "contracts:create"
	OpContractUpdate Operation = "contracts:update"
	OpContractDelete Operation = "contracts:delete"

	OpEventCreate Operation = "events:create"
	OpEventUpdate Operation = "events:update"
	OpEventDelete Operation = "events:delete"

	OpUserCreate Operation = "users:create"
)

// capabilities is the closed role-to-operation table. Ownership against the
// specific target object is checked separately; this table only answers
// "may this role ever do this".
var capabilities = map[models.UserRole]map[Operation]bool{
	models.UserRoleSeller: {
		OpClientCreate:   true,
		OpClientUpdate:   true,
		OpClientDelete:   true,
		OpContractCreate: true,
		OpContractUpdate: true,
		OpContractDelete: true,
		OpEventCreate:    true,
	},
	models.UserRoleSupport: {
		OpEventUpdate: true,
		OpEventDelete: true,
	},
	models.UserRoleManager: {
		OpClientReassign: true,
		OpEventUpdate:    true,
		OpEventDelete:    true,
		OpUserCreate:     true,
	},
}

// CanPerform reports whether the role is ever allowed the operation.
func CanPerform(role models.UserRole, op Operation) bool {
	ops, ok := capabilities[role]
	if !ok {
		return false
	}
	return ops[op]
}

func IsSeller(claims *Claims) bool {
	return claims != nil && claims.Role == models.UserRoleSeller
}

func IsSupport(claims *Claims) bool {
	return claims != nil && claims.Role == models.UserRoleSupport
}

func IsManager(claims *Claims) bool {
	return claims != nil && claims.Role == models.UserRoleManager
}

// ValidateRole rejects anything outside the closed role set.
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRoleSeller, models.UserRoleSupport, models.UserRoleManager:
		return nil
	default:
		return errors.New("invalid role")
	}
}
