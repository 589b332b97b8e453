package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abh4y369/ServNex-App/models"
	"github.com/Abh4y369/ServNex-App/utils"
)

const (
	ContextUserID      = "userId"
	ContextAccountType = "accountType"
	ContextRole        = "userRole"
)

// AuthRequired validates the bearer token and stores the caller's identity
// on the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextAccountType, claims.AccountType)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// BusinessOnly gates the admin dashboard endpoints to business accounts.
// Must run after AuthRequired.
func BusinessOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextAccountType) != models.AccountTypeBusiness {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Business accounts only"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by AuthRequired.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}
