package middleware

import (
	"net/http"
	"strings"

	"midday/internal/model"
	"midday/internal/pkg"
	"midday/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

var rSession = &redis.SessionRepository{}

// Auth 解析 Authorization: Bearer <token>，并与 redis 里的会话比对。
// 单点登录：token 必须是该用户最新一次登录下发的那个。
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "missing token"})
			return
		}
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "malformed authorization header"})
			return
		}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
			return
		}

		current, err := rSession.GetUserToken(claims.UserID)
		if err != nil || current != tokenStr {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "session expired"})
			return
		}
		_ = rSession.ExtendUserToken(claims.UserID)

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminOnly 管理端接口的角色门槛，挂在 Auth 之后
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role.(int) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "admin only"})
			return
		}
		c.Next()
	}
}
