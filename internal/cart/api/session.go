package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName   = "cart_session_id"
	sessionContextKey   = "cartSessionID"
	sessionCookieMaxAge = 30 * 24 * 60 * 60 // seconds
)

// SessionMiddleware resolves the caller's cart session id from a cookie,
// minting a fresh one when absent. The id is an opaque random token with no
// account binding; it is the sole cart-ownership key.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
