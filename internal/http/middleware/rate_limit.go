package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

// RateLimiter is a fixed-window per-address counter. All requests count,
// successful or not.
type RateLimiter struct {
	limit  int
	window time.Duration
	mu     sync.Mutex
	items  map[string]*rateEntry
}

type rateEntry struct {
	count int
	reset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		items:  make(map[string]*rateEntry),
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rl.mu.Lock()
		entry, ok := rl.items[ip]
		if !ok || now.After(entry.reset) {
			entry = &rateEntry{count: 0, reset: now.Add(rl.window)}
			rl.items[ip] = entry
		}
		entry.count++
		count := entry.count
		reset := entry.reset
		rl.mu.Unlock()

		if count > rl.limit {
			c.Header("Retry-After", fmt.Sprintf("%d", int(time.Until(reset).Seconds())))
			c.Error(utils.NewAppError(http.StatusTooManyRequests,
				"Too many login attempts. Access blocked for 1 hour for security."))
			c.Abort()
			return
		}

		c.Next()
	}
}
