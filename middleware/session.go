package middleware

import (
	"log"

	"cafe-storefront/config"
	"cafe-storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cafe_session"

// SessionMiddleware attaches an anonymous session id to the request, minting
// one when the client has none. The token travels as a cookie and is echoed in
// the X-Session-Token header so non-browser clients can carry it themselves.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("X-Session-Token")
		if tokenString == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString != "" {
			if claims, err := utils.ValidateSessionToken(tokenString); err == nil {
				c.Set("session_id", claims.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.NewString()
		token, err := utils.CreateSessionToken(sessionID)
		if err != nil {
			log.Println("Failed to sign session token:", err)
			c.Set("session_id", sessionID)
			c.Next()
			return
		}

		maxAge := int(config.AppConfig.SessionTTL.Seconds())
		c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
		c.Header("X-Session-Token", token)
		c.Set("session_id", sessionID)
		c.Next()
	}
}
