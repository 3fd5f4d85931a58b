package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"epicevents/internal/auth"
	"epicevents/internal/middleware"
	"epicevents/internal/services"
	"epicevents/internal/services/dto"
)

type ContractHandler struct {
	*BaseHandler
	contractService services.ContractService
	tokens          *auth.TokenService
}

func NewContractHandler(base *BaseHandler, contractService services.ContractService, tokens *auth.TokenService) *ContractHandler {
	return &ContractHandler{
		BaseHandler:     base,
		contractService: contractService,
		tokens:          tokens,
	}
}

func (h *ContractHandler) RegisterRoutes(r *gin.RouterGroup) {
	contracts := r.Group("/contracts")
	contracts.Use(middleware.AuthMiddleware(h.tokens))
	{
		contracts.GET("", h.List)
		contracts.POST("", h.Create)
		contracts.GET("/:id", h.Get)
		contracts.PUT("/:id", h.Update)
		contracts.DELETE("/:id", h.Delete)
	}
}

func (h *ContractHandler) List(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	q := dto.ContractListQuery{
		Lastname:    c.Query("lastname"),
		Email:       c.Query("email"),
		DateCreated: c.Query("date_created"),
		Amount:      c.Query("amount"),
		Responsible: c.Query("responsible"),
	}

	contracts, err := h.contractService.List(claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts)
}

func (h *ContractHandler) Create(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	var req dto.CreateContractRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contractService.Create(claims, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contract)
}

func (h *ContractHandler) Get(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "contracts")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	contract, err := h.contractService.Get(claims, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contract)
}

func (h *ContractHandler) Update(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "contracts")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateContractRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contractService.Update(claims, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contract)
}

func (h *ContractHandler) Delete(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "contracts")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contractService.Delete(claims, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
