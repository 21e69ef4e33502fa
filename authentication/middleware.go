package authentication

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the gin context key under which the middleware stores the
// verified token subject.
const SubjectKey = "subject"

// RequireRole gates a route group on a valid token for the given role. The
// failure body is deliberately uniform: callers never learn whether the token
// was malformed, expired, or for a subject that no longer exists.
func RequireRole(tokens *TokenService, role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if !tokens.Verify(raw, role) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		subject, err := tokens.ExtractSubject(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(SubjectKey, subject)
		c.Next()
	}
}
