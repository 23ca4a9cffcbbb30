package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dzinstall/storefront/internal/server/http/dto"
)

// NotificationHandler serves the customer popup inbox.
type NotificationHandler struct {
	facade NotificationFacade
}

func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// Inbox handles GET /api/notifications.
func (h *NotificationHandler) Inbox(c *gin.Context) {
	inbox, err := h.facade.Inbox(c.Request.Context(), CurrentPhone(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inbox)
}

// Dismiss handles POST /api/notifications/dismiss.
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	var req dto.DismissRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		badRequest(c)
		return
	}

	if err := h.facade.Dismiss(c.Request.Context(), CurrentPhone(c), req.Category, req.OrderID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
