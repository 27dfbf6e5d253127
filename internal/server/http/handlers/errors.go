package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/smsrent/internal/domain/errors"
	"github.com/polkiloo/smsrent/internal/server/http/dto"
)

const (
	msgInvalidRequest = "Invalid request"
	msgInvalidService = "Invalid service"
	msgInvalidCountry = "Invalid country"
	msgNotFound       = "Order not found"
	msgInternal       = "Internal server error"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Success: false, Error: message})
}

// respondDomainError maps err onto a status code and message. unavailable is
// the message used when the provider could not be reached.
func respondDomainError(c *gin.Context, err error, unavailable string) {
	var perr *domainErrors.ProviderError
	switch {
	case errors.Is(err, domainErrors.ErrInvalidService):
		respondError(c, http.StatusBadRequest, msgInvalidService)
	case errors.Is(err, domainErrors.ErrInvalidCountry):
		respondError(c, http.StatusBadRequest, msgInvalidCountry)
	case errors.Is(err, domainErrors.ErrNotFound):
		respondError(c, http.StatusNotFound, msgNotFound)
	case errors.As(err, &perr):
		respondError(c, http.StatusUnprocessableEntity, perr.Message)
	case errors.Is(err, domainErrors.ErrProviderUnavailable):
		respondError(c, http.StatusBadGateway, unavailable)
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, msgInternal)
	}
}

func isUnavailable(err error) bool {
	return errors.Is(err, domainErrors.ErrProviderUnavailable)
}
