package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter holds a per-IP rate limiter and the last time it was used.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitByIP limits requests per client IP. Completion searches are the
// expensive path, so the search route gets a low limit while the rest of the
// API is unmetered. Idle limiters are evicted after the expiration window.
func RateLimitByIP(rps int, burst int, cleanupInterval, expiration time.Duration) gin.HandlerFunc {
	var limiters sync.Map

	go func() {
		for range time.Tick(cleanupInterval) {
			limiters.Range(func(key, value interface{}) bool {
				if time.Since(value.(*clientLimiter).lastSeen) > expiration {
					limiters.Delete(key)
				}
				return true
			})
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		actual, _ := limiters.LoadOrStore(ip, &clientLimiter{
			limiter:  rate.NewLimiter(rate.Limit(rps), burst),
			lastSeen: time.Now(),
		})

		info := actual.(*clientLimiter)
		info.lastSeen = time.Now()

		if !info.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
