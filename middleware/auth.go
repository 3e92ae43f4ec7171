package middleware

import (
	"net/http"

	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authClaimsKey = "authClaims"

// GetAuthClaims returns the claims set by RequireAuth, or nil when the
// request is unauthenticated.
func GetAuthClaims(c *gin.Context) *utils.AuthClaims {
	val, exists := c.Get(authClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*utils.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// RequireAuth authenticates the session cookie and, when roles are given,
// restricts the route to those roles. The cached token hash in Redis is the
// fast path; a cache miss falls back to signature verification so sessions
// survive a cache flush.
func RequireAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		claims, err := utils.ExtractClaimsFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
		if _, cacheErr := utils.GetAuthCacheClient().Get(c.Request.Context(), cacheKey).Result(); cacheErr != nil {
			// Cache miss or Redis down: the signature check above already
			// passed, so accept but log for visibility.
			utils.GetLogger().Debug("auth cache miss, accepting verified token",
				zap.String("accountId", claims.ID))
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
