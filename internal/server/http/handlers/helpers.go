package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/server/http/dto"
	"github.com/dzinstall/storefront/internal/server/http/middleware"
)

const malformedBody = "malformed request body"

// CurrentPhone extracts the authenticated user's phone from context.
func CurrentPhone(c *gin.Context) string {
	return c.GetString(middleware.PhoneContextKey)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	var (
		validation *domainErrors.ValidationError
		duplicate  *domainErrors.DuplicateError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domainErrors.ErrValidation.Error(), Details: validation.Fields})
	case errors.As(err, &duplicate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Details: map[string]string{duplicate.Field: "already registered"}})
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists), errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: malformedBody})
}
