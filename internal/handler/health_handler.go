package handler

import (
	"net/http"

	"midday/internal/repository/mysql"
	"midday/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

// Healthz db 和 redis 都通才算健康
func Healthz(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"mysql": "ok", "redis": "ok"}

	if sqlDB, err := mysql.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		checks["mysql"] = "down"
		status = http.StatusServiceUnavailable
	}
	if !redis.Healthy(c.Request.Context()) {
		checks["redis"] = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, checks)
}
