package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/pkg/jwtutil"
	"tripplanner/internal/transport/http/response"
)

const ContextIdentityKey = "identity"

// Identity is the authenticated subject of a request, resolved from the
// bearer token and threaded explicitly into every handler.
type Identity struct {
	UserID uint
	Email  string
}

// AuthBearer rejects requests without a valid bearer token and stores the
// resolved identity in the gin context. It keeps no state between requests.
func AuthBearer(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Fail(c, http.StatusUnauthorized, "Invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextIdentityKey, Identity{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

// IdentityFromContext returns the identity placed by AuthBearer.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
