package auth

import (
	"net/http"

	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/models"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware.
const (
	ContextUserID = "userID"
	ContextRole   = "userRole"
)

// SessionMiddleware creates a gin middleware that requires a valid
// session cookie. It sets the user id and role on the context.
func SessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessions.FromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// OptionalSessionMiddleware sets the user id and role if a valid session
// cookie is present, but does not fail when it is missing or invalid.
func OptionalSessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := sessions.FromRequest(c); ok {
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)
		}
		c.Next()
	}
}

// AdminMiddleware creates a gin middleware requiring an admin session.
// The role is read from the session itself, so a role change takes
// effect on the next login, matching the session's lifetime semantics.
func AdminMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessions.FromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin required"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
