package middleware

import (
	"strings"

	"github.com/naludev/cohabitdb/services"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
)

// All guard failures share one message: callers cannot tell a missing
// token from a revoked, expired or malformed one.
const unauthorizedMessage = "Authorization denied"

// AuthMiddleware gates protected operations. The bearer token must be
// present, absent from the revocation set, and pass signature and
// expiry verification. On success the user's id is placed in the
// request context under "user_id".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractBearerToken(c)
		if token == "" {
			utils.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		if services.IsTokenRevoked(token) {
			utils.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		userID, err := services.VerifyToken(token)
		if err != nil {
			utils.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// ExtractBearerToken returns the token from the Authorization header,
// or "" when the header is missing or not a bearer scheme.
func ExtractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
