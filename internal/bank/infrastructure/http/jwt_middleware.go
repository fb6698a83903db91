package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/jwt"
)

const (
	authHeaderName = "Authorization"
)

func NewAuthMiddleware(parser jwt.TokenParser, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := parser.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(jwt.UserIDContextKey, claims.UserID)
		c.Set(jwt.RoleContextKey, claims.Role)
		c.Next()
	}
}

func NewAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(jwt.RoleContextKey) != string(domain.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errors": "admin access required"})
			return
		}

		c.Next()
	}
}
