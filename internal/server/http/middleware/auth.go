package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	pkgAuth "github.com/dzinstall/storefront/internal/pkg/auth"
)

const (
	// PhoneContextKey is a gin context key for the authenticated user's phone.
	PhoneContextKey = "phone"
	authCookieName  = "storefront_token"
)

// TokenParser resolves a session token to the phone it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// ProfileReader loads the profile behind an authenticated phone.
type ProfileReader interface {
	Me(ctx context.Context, phone string) (model.User, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		phone, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(PhoneContextKey, phone)
		c.Next()
	}
}

// AdminRequired lets only back-office accounts through. It must run after
// AuthRequired.
func AdminRequired(profiles ProfileReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, err := profiles.Me(c.Request.Context(), c.GetString(PhoneContextKey))
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		case err != nil:
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		case !usr.IsAdmin():
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
