package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hwlab/portal-go/response"
	"github.com/hwlab/portal-go/types"
)

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if claims.Kind != types.KindAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Admin access required"})
			return
		}
		c.Next()
	}
}

func StudentOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if claims.Kind != types.KindStudent {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Student access required"})
			return
		}
		c.Next()
	}
}

func SuperAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if claims.Kind != types.KindAdmin || claims.Role != "super_admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Super admin access required"})
			return
		}
		c.Next()
	}
}
