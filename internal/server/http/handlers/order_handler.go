package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/smsrent/internal/domain/model"
	"github.com/polkiloo/smsrent/internal/server/http/dto"
)

const statusUnknown = "UNKNOWN"

// OrderHandler manages rental lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/create.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req.Service, req.Country, req.MaxPrice.Ptr())
	if err != nil {
		respondDomainError(c, err, "Failed to create order")
		return
	}
	c.JSON(http.StatusOK, dto.CreateOrderResponse{Success: true, Order: toOrderResponse(*order)})
}

// Status handles GET /api/status/:id.
func (h *OrderHandler) Status(c *gin.Context) {
	status, sms, err := h.facade.OrderStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err, statusUnknown)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatusResponse(status, sms))
}

// Finish handles POST /api/finish/:id.
func (h *OrderHandler) Finish(c *gin.Context) {
	h.action(c, h.facade.FinishOrder, "Unknown error")
}

// Cancel handles POST /api/cancel/:id.
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.action(c, h.facade.CancelOrder, "Failed to cancel order")
}

// Remove handles POST /api/remove_order/:id.
func (h *OrderHandler) Remove(c *gin.Context) {
	h.action(c, h.facade.RemoveOrder, msgInternal)
}

// Timeout handles POST /api/timeout/:id.
func (h *OrderHandler) Timeout(c *gin.Context) {
	h.action(c, h.facade.TimeoutOrder, msgInternal)
}

// RequestAgain handles POST /api/request_again/:id.
func (h *OrderHandler) RequestAgain(c *gin.Context) {
	message, err := h.facade.RequestAgain(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err, "No response from API")
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Success: true, Message: message})
}

// Active handles GET /api/orders.
func (h *OrderHandler) Active(c *gin.Context) {
	h.list(c, h.facade.ActiveOrders)
}

// History handles GET /api/history.
func (h *OrderHandler) History(c *gin.Context) {
	h.list(c, h.facade.OrderHistory)
}

func (h *OrderHandler) action(c *gin.Context, fn func(context.Context, string) error, unavailable string) {
	if err := fn(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err, unavailable)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Success: true})
}

func (h *OrderHandler) list(c *gin.Context, fn func(context.Context) ([]model.Order, error)) {
	orders, err := fn(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, msgInternal)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Orders: response})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		Number:      order.Number,
		Service:     order.Service,
		ServiceName: order.ServiceName,
		Country:     order.Country,
		CountryName: order.CountryName,
		Status:      string(order.Status),
		SMS:         order.SMS,
		Price:       order.Price,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
		ClosedAt:    order.ClosedAt,
	}
}
