package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/smsrent/internal/server/http/dto"
)

// PriceHandler serves provider price lists.
type PriceHandler struct {
	facade PriceFacade
}

// NewPriceHandler constructs PriceHandler.
func NewPriceHandler(facade PriceFacade) *PriceHandler {
	return &PriceHandler{facade: facade}
}

// List handles POST /api/prices.
func (h *PriceHandler) List(c *gin.Context) {
	var req dto.PricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	prices, err := h.facade.Prices(c.Request.Context(), req.Service, req.Country)
	if err != nil {
		respondDomainError(c, err, "Failed to get prices")
		return
	}
	c.JSON(http.StatusOK, dto.PricesResponse{Success: true, Prices: prices})
}
