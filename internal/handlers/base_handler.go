package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"epicevents/internal/auth"
	"epicevents/internal/logger"
	"epicevents/internal/middleware"
	"epicevents/internal/validator"
	"epicevents/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidateJSON binds the body and runs DTO validation. On failure it
// writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// CurrentClaims returns the acting user's verified claims, writing a 401
// when the auth middleware did not run.
func (h *BaseHandler) CurrentClaims(c *gin.Context) (*auth.Claims, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: claims not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return nil, false
	}
	return claims, true
}

// ParseParamID parses the :id path parameter, reporting an unparsable
// value as an unknown id for the entity so lookups and bad ids share one
// not-found path.
func ParseParamID(c *gin.Context, entity string) (uint, error) {
	valueStr := c.Param("id")
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, apperrors.NewNotFoundError(entity, "This ID "+entitySingular(entity)+" doesn't exist.")
	}
	return uint(value), nil
}

func entitySingular(entity string) string {
	if len(entity) > 1 && entity[len(entity)-1] == 's' {
		return entity[:len(entity)-1]
	}
	return entity
}
