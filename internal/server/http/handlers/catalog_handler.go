package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service and country tables.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Services handles GET /api/services.
func (h *CatalogHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Services())
}

// Countries handles GET /api/countries.
func (h *CatalogHandler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Countries())
}
