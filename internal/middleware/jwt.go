// Package middleware holds request processing shared by handlers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ticket-service/internal/utils"
)

// AccountIDKey is the echo context key holding the authenticated account ID
// as an int64.
const AccountIDKey = "account_id"

// JWTAuth validates a Bearer access token and stores the account ID it was
// issued for under AccountIDKey.  Requests without a valid token get 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			accountID, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(AccountIDKey, accountID)
			return next(c)
		}
	}
}

// AccountID returns the account ID stored by JWTAuth, or 0 when the request
// is anonymous.
func AccountID(c echo.Context) int64 {
	id, _ := c.Get(AccountIDKey).(int64)
	return id
}
