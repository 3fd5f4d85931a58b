package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"epicevents/internal/auth"
	"epicevents/internal/middleware"
	"epicevents/internal/services"
	"epicevents/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	tokens      *auth.TokenService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		tokens:      tokens,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/signin", h.SignIn)
	r.POST("/token/refresh", h.Refresh)

	// Account provisioning is manager-gated inside the service.
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(h.tokens))
	{
		protected.POST("/signup", h.SignUp)
	}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pair, err := h.authService.SignIn(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pair, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	claims, ok := h.CurrentClaims(c)
	if !ok {
		return
	}

	var req dto.SignUpRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.SignUp(claims, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
