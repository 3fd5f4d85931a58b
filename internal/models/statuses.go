package models

type UserRole string
type ClientRole string
type ContractStatus string

const (
	UserRoleSeller  UserRole = "seller"
	UserRoleSupport UserRole = "support"
	UserRoleManager UserRole = "manager"

	ClientRoleProspect ClientRole = "prospect"
	ClientRoleClient   ClientRole = "client"

	ContractStatusUnsigned ContractStatus = "unsigned"
	ContractStatusSigned   ContractStatus = "signed"
	ContractStatusEnded    ContractStatus = "ended"
)
