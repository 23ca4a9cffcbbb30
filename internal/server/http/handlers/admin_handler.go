package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/lifecycle"
	"github.com/dzinstall/storefront/internal/server/http/dto"
	"github.com/dzinstall/storefront/internal/usecase"
)

// AdminHandler serves the back-office console.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Order handles GET /api/admin/orders/:id. Opening an order acknowledges its
// pending delivery update.
func (h *AdminHandler) Order(c *gin.Context) {
	details, err := h.facade.OpenOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Transition handles POST /api/admin/orders/:id/status.
func (h *AdminHandler) Transition(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		badRequest(c)
		return
	}

	order, err := h.facade.TransitionOrder(c.Request.Context(), toTransitionRequest(c.Param("id"), req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func toTransitionRequest(orderID string, req dto.StatusRequest) lifecycle.Request {
	out := lifecycle.Request{
		OrderID: orderID,
		Status:  model.OrderStatus(strings.ToUpper(strings.TrimSpace(string(req.Status)))),
		Reason:  strings.TrimSpace(req.Reason),
	}
	company := strings.TrimSpace(req.DeliveryCompany)
	tracking := strings.TrimSpace(req.TrackingNumber)
	if company != "" || tracking != "" {
		out.Delivery = &model.DeliveryInfo{Company: company, TrackingNumber: tracking}
	}
	return out
}

// DeliveryUpdates handles GET /api/admin/delivery-updates.
func (h *AdminHandler) DeliveryUpdates(c *gin.Context) {
	orders, err := h.facade.DeliveryUpdates(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Customers handles GET /api/admin/customers.
func (h *AdminHandler) Customers(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// CreateCustomer handles POST /api/admin/customers.
func (h *AdminHandler) CreateCustomer(c *gin.Context) {
	var req usecase.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	usr, err := h.facade.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// View handles GET /api/admin/view.
func (h *AdminHandler) View(c *gin.Context) {
	view, err := h.facade.AdminView(c.Request.Context(), CurrentPhone(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ViewResponse{View: view})
}

// SetView handles PUT /api/admin/view.
func (h *AdminHandler) SetView(c *gin.Context) {
	var req dto.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	if err := h.facade.SetAdminView(c.Request.Context(), CurrentPhone(c), req.View); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ViewResponse{View: req.View})
}
