package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go-food-ordering/apperrors"
	"go-food-ordering/helpers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by Authentication.
const (
	KeyEmail     = "email"
	KeyName      = "name"
	KeyUID       = "uid"
	KeyRole      = "role"
	KeySessionID = "sid"
	KeyCartKey   = "cartKey"
)

const CartCookie = "cart_session"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*helpers.SignedDetails, error)
}

func tokenFrom(c *gin.Context) string {
	if t := c.Request.Header.Get("token"); t != "" {
		return t
	}
	auth := c.Request.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	// browsers cannot set headers on websocket upgrades
	return c.Query("token")
}

// Authentication rejects requests without a live session token.
func Authentication(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := tokenFrom(c)
		if clientToken == "" {
			abort(c, apperrors.ErrNotAuthenticated)
			return
		}
		claims, err := auth.Authenticate(c.Request.Context(), clientToken)
		if err != nil {
			abort(c, err)
			return
		}
		c.Set(KeyEmail, claims.Email)
		c.Set(KeyName, claims.Name)
		c.Set(KeyUID, claims.Uid)
		c.Set(KeyRole, claims.Role)
		c.Set(KeySessionID, claims.SessionID)
		c.Next()
	}
}

// AdminOnly must run after Authentication.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(KeyRole) != "admin" {
			abort(c, apperrors.Forbidden("Admin access required."))
			return
		}
		c.Next()
	}
}

// CartSession gives every browser a cart key, independent of sign-in.
func CartSession(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(CartCookie)
		if err != nil || key == "" {
			key = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CartCookie, key, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set(KeyCartKey, key)
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.AbortWithStatusJSON(appErr.Code, appErr)
}
