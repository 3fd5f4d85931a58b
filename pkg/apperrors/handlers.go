package apperrors

import (
	"github.com/gin-gonic/gin"

	"epicevents/internal/logger"
)

// ErrorResponse is the envelope for every error body:
// {"error": {"code": ..., "domain": ..., "message": ...}}.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a structured response. Anything that is not an
// AppError is treated as internal and its details are withheld.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
