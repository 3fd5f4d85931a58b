package services

// ServiceContainer bundles the wired services for the router setup.
type ServiceContainer struct {
	AuthService     AuthService
	ClientService   ClientService
	ContractService ContractService
	EventService    EventService
}
