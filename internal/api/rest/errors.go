package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest          ErrorCode = "bad_request"
	errCodeNotFound            ErrorCode = "not_found"
	errCodeValidationFailed    ErrorCode = "validation_failed"
	errCodeConflict            ErrorCode = "conflict"
	errCodePreconditionFailed  ErrorCode = "precondition_failed"
	errCodeInsufficientBalance ErrorCode = "insufficient_balance"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 422 Unprocessable Entity with validation detail
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps a failure from the ledger or marketplace services to
// its HTTP status. Kinds that reflect lost races or unmet state preconditions
// all read as 409 so clients can retry after a fresh read.
func respondDomainError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		respondBadRequest(c, err.Error())
	case domain.KindNotFound:
		respondNotFound(c, err.Error())
	case domain.KindPreconditionFailed:
		respondWithError(c, http.StatusConflict, errCodePreconditionFailed, err.Error())
	case domain.KindConflict:
		respondWithError(c, http.StatusConflict, errCodeConflict, err.Error())
	case domain.KindInsufficientBalance:
		respondWithError(c, http.StatusConflict, errCodeInsufficientBalance, err.Error())
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
