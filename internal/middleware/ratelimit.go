package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimit 按客户端 IP 的令牌桶限流，perMinute <= 0 时关闭。
// 桶表常驻内存，后台每 10 分钟清一次长期不活跃的 IP。
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
		rate    = float64(perMinute) / 60.0
		burst   = float64(perMinute)
	)

	go func() {
		for range time.Tick(10 * time.Minute) {
			mu.Lock()
			for ip, b := range buckets {
				if time.Since(b.lastSeen) > 10*time.Minute {
					delete(buckets, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		b, ok := buckets[ip]
		now := time.Now()
		if !ok {
			b = &bucket{tokens: burst, lastSeen: now}
			buckets[ip] = b
		}
		b.tokens += now.Sub(b.lastSeen).Seconds() * rate
		if b.tokens > burst {
			b.tokens = burst
		}
		b.lastSeen = now

		if b.tokens < 1 {
			mu.Unlock()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"msg": "too many requests"})
			return
		}
		b.tokens--
		mu.Unlock()

		c.Next()
	}
}
