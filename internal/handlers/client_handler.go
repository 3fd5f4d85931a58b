package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"epicevents/internal/auth"
	"epicevents/internal/middleware"
	"epicevents/internal/services"
	"epicevents/internal/services/dto"
)

type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
	tokens        *auth.TokenService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService, tokens *auth.TokenService) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   base,
		clientService: clientService,
		tokens:        tokens,
	}
}

func (h *ClientHandler) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	clients.Use(middleware.AuthMiddleware(h.tokens))
	{
		clients.GET("", h.List)
		clients.POST("", h.Create)
		clients.GET("/:id", h.Get)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
		clients.PUT("/:id/assignment", h.Reassign)
	}
}

// List is open to every authenticated role; restriction happens through
// the responsible flag, never through the role alone.
func (h *ClientHandler) List(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	q := dto.ClientListQuery{
		Lastname:    c.Query("lastname"),
		Email:       c.Query("email"),
		Responsible: c.Query("responsible"),
	}

	clients, err := h.clientService.List(claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.Create(claims, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Get(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "clients")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	client, err := h.clientService.Get(claims, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "clients")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.Update(claims, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "clients")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.clientService.Delete(claims, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) Reassign(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "clients")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ReassignClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.Reassign(claims, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}
