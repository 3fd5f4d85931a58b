package routes

import (
	"github.com/gin-gonic/gin"

	"epicevents/internal/handlers"
)

// RegisterRoutes wires every HTTP route onto the engine.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ClientHandler.RegisterRoutes(api)
		appHandlers.ContractHandler.RegisterRoutes(api)
		appHandlers.EventHandler.RegisterRoutes(api)
	}
}
