package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/dto"
	"stayhub/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// FieldErrorsHandler returns per-field validation messages.
func FieldErrorsHandler(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, dto.FieldErrorsResponse{Errors: fieldErrors})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainErrorHandler converts a domain error into its response status.
// This is the single place domain errors become user-facing strings.
func DomainErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, usecase.ErrUserNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, err.Error())
	case errors.Is(err, usecase.ErrEmailTaken):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrInvalidPassword):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	default:
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	}
}

// CurrentUser returns the session user placed on the context by the
// auth middleware.
func CurrentUser(c *gin.Context) *entity.User {
	value, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	user, ok := value.(entity.User)
	if !ok {
		return nil
	}
	return &user
}
