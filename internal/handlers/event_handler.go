package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"epicevents/internal/auth"
	"epicevents/internal/middleware"
	"epicevents/internal/services"
	"epicevents/internal/services/dto"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
	tokens       *auth.TokenService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService, tokens *auth.TokenService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
		tokens:       tokens,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware(h.tokens))
	{
		events.GET("", h.List)
		events.POST("", h.Create)
		events.GET("/:id", h.Get)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	q := dto.EventListQuery{
		Lastname:    c.Query("lastname"),
		Email:       c.Query("email"),
		EventDate:   c.Query("event_date"),
		Responsible: c.Query("responsible"),
	}

	events, err := h.eventService.List(claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	event, err := h.eventService.Create(claims, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Get(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "events")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	event, err := h.eventService.Get(claims, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "events")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	event, err := h.eventService.Update(claims, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "events")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.eventService.Delete(claims, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
