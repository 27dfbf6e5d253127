package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/smsrent/internal/server/http/dto"
)

const msgBalanceFailed = "Failed to get balance"

// BalanceHandler serves the provider account balance.
type BalanceHandler struct {
	facade BalanceFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade BalanceFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Summary handles GET /api/balance.
func (h *BalanceHandler) Summary(c *gin.Context) {
	balance, err := h.facade.Balance(c.Request.Context())
	if err != nil {
		status := http.StatusBadGateway
		if !isUnavailable(err) {
			status = http.StatusUnprocessableEntity
		}
		respondError(c, status, msgBalanceFailed)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Success: true, Balance: balance})
}
