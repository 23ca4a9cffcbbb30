package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/server/http/dto"
)

// OrderHandler manages customer order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		badRequest(c)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentPhone(c), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentPhone(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// SubmitDeliveryInfo handles POST /api/orders/:id/delivery-info.
func (h *OrderHandler) SubmitDeliveryInfo(c *gin.Context) {
	var req dto.DeliveryInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	info := model.DeliveryInfo{Company: req.Company, TrackingNumber: req.TrackingNumber}
	order, err := h.facade.SubmitDeliveryInfo(c.Request.Context(), CurrentPhone(c), c.Param("id"), info)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Payments handles GET /api/orders/:id/payments.
func (h *OrderHandler) Payments(c *gin.Context) {
	schedule, err := h.facade.OrderPayments(c.Request.Context(), CurrentPhone(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}
