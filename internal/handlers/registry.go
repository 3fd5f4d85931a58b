package handlers

import (
	"epicevents/internal/auth"
	"epicevents/internal/services"
	"epicevents/internal/validator"
)

// AppHandlers bundles the wired HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	ClientHandler   *ClientHandler
	ContractHandler *ContractHandler
	EventHandler    *EventHandler
}

func NewAppHandlers(container *services.ServiceContainer, tokens *auth.TokenService, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, container.AuthService, tokens),
		ClientHandler:   NewClientHandler(base, container.ClientService, tokens),
		ContractHandler: NewContractHandler(base, container.ContractService, tokens),
		EventHandler:    NewEventHandler(base, container.EventService, tokens),
	}
}
