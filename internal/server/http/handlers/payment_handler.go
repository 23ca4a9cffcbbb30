package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dzinstall/storefront/internal/server/http/dto"
	"github.com/dzinstall/storefront/internal/usecase"
)

// PaymentHandler manages the installment ledger endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Schedule handles GET /api/admin/payments/:orderId.
func (h *PaymentHandler) Schedule(c *gin.Context) {
	schedule, err := h.facade.PaymentSchedule(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Toggle handles POST /api/admin/payments/:orderId.
func (h *PaymentHandler) Toggle(c *gin.Context) {
	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Month == nil {
		badRequest(c)
		return
	}

	schedule, err := h.facade.TogglePayment(c.Request.Context(), c.Param("orderId"), *req.Month)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Bulk handles POST /api/admin/payments/bulk.
func (h *PaymentHandler) Bulk(c *gin.Context) {
	var req dto.BulkPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	rows := make([]usecase.BulkPaymentRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, usecase.BulkPaymentRow{CCPNumber: r.CCPNumber, Amount: r.Amount})
	}
	result, err := h.facade.BulkPayments(c.Request.Context(), rows)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Lookup handles GET /api/admin/payments/lookup?ccp=.
func (h *PaymentHandler) Lookup(c *gin.Context) {
	ccp := strings.TrimSpace(c.Query("ccp"))
	if ccp == "" {
		badRequest(c)
		return
	}

	match, err := h.facade.LookupPayment(c.Request.Context(), ccp)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}
