package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickeats/internal/session"
)

const sessionIDKey = "sessionID"

func createSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := sessions.Issue()
		if err != nil {
			errorJSON(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"token":     token,
			"expiresIn": sessions.TTLSeconds(),
		})
	}
}

// requireSession validates the session header and stashes the session id for
// handlers. The token doubles as the cart key.
func requireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(sessionHeader)
		if token == "" || !sessions.Validate(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or expired session"})
			return
		}
		c.Set(sessionIDKey, token)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
