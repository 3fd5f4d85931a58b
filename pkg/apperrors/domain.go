package apperrors

import "net/http"

// Factories for the CRM error taxonomy. Each kind keeps its own status code:
// 404 NotFound, 409 domain-invariant violations, 403 ownership/role gates,
// 400 malformed query parameters, 401 credential failures.

// NewNotFoundError reports an unresolved id or business key.
func NewNotFoundError(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// NewDomainConflictError reports a violated business invariant
// (prospect contract, duplicate event, contract/client mismatch).
func NewDomainConflictError(domain, message string) *AppError {
	return New(CodeDomainConflict, domain, message, http.StatusConflict)
}

// NewInvalidQueryParamError reports a malformed list-endpoint query
// parameter (bad date string, responsible flag outside {0,1}).
func NewInvalidQueryParamError(message string) *AppError {
	return New(CodeInvalidQueryParam, "query", message, http.StatusBadRequest)
}

// ErrAlreadyExists wraps a uniqueness violation from the store.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
