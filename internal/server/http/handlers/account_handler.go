package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dzinstall/storefront/internal/server/http/dto"
	"github.com/dzinstall/storefront/internal/server/http/middleware"
	"github.com/dzinstall/storefront/internal/usecase"
)

// AccountHandler processes registration, login and profile requests.
type AccountHandler struct {
	facade AccountFacade
}

// NewAccountHandler creates AccountHandler instance.
func NewAccountHandler(facade AccountFacade) *AccountHandler {
	return &AccountHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req usecase.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	usr, token, err := h.facade.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.SessionResponse{Token: token, User: usr})
}

// Login handles POST /api/user/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	usr, token, err := h.facade.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.SessionResponse{Token: token, User: usr})
}

// Logout handles POST /api/user/logout.
func (h *AccountHandler) Logout(c *gin.Context) {
	h.facade.Logout(c.Request.Context(), CurrentPhone(c))
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/user/me.
func (h *AccountHandler) Me(c *gin.Context) {
	usr, err := h.facade.Me(c.Request.Context(), CurrentPhone(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
