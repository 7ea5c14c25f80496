package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pirouette/models"
	"pirouette/utils"
)

const (
	// ContextAccountID is the gin context key holding the authenticated
	// account's ID.
	ContextAccountID = "accountID"
	// ContextRole holds the authenticated account's role.
	ContextRole = "role"
)

// jwtAuth validates the Bearer token and, when requiredRole is non-empty,
// enforces the role claim.
func jwtAuth(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		accountID, role, err := utils.ExtractIDAndRoleFromToken(tokenString)
		if err != nil || accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if requiredRole != "" && role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden for this role"})
			return
		}

		c.Set(ContextAccountID, accountID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// JWTAuthDancerMiddleware authenticates dancer accounts.
func JWTAuthDancerMiddleware() gin.HandlerFunc {
	return jwtAuth(models.RoleDancer)
}

// JWTAuthStylistMiddleware authenticates stylist accounts.
func JWTAuthStylistMiddleware() gin.HandlerFunc {
	return jwtAuth(models.RoleStylist)
}

// JWTAuthAnyMiddleware authenticates any signed-in account.
func JWTAuthAnyMiddleware() gin.HandlerFunc {
	return jwtAuth("")
}
