package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"epicevents/internal/models"
)

// registerCustomRules installs the closed-enumeration rules used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("crm-role", validateUserRole)
	mustRegister("client-role", validateClientRole)
	mustRegister("contract-status", validateContractStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is 'required's business
	}
	switch models.UserRole(value) {
	case models.UserRoleSeller, models.UserRoleSupport, models.UserRoleManager:
		return true
	default:
		return false
	}
}

func validateClientRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ClientRole(value) {
	case models.ClientRoleProspect, models.ClientRoleClient:
		return true
	default:
		return false
	}
}

func validateContractStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ContractStatus(value) {
	case models.ContractStatusUnsigned, models.ContractStatusSigned, models.ContractStatusEnded:
		return true
	default:
		return false
	}
}
