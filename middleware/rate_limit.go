package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Mỗi key (weblogin hoặc IP) có một limiter riêng + lastSeen để dọn dẹp
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyRateLimiter quản lý map<key, limiter>
type KeyRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	// cấu hình chung cho tất cả key
	reqPerMin int // số request/phút
	burst     int // số burst cho phép
	ttl       time.Duration

	done chan struct{} // đóng khi goroutine dọn dẹp đã dừng
}

// reqPerMin: ví dụ 20, burst: 5, ttl: 5 phút (key không hoạt động sẽ bị dọn).
// Goroutine dọn dẹp dừng khi ctx bị huỷ.
func NewKeyRateLimiter(ctx context.Context, reqPerMin, burst int, ttl time.Duration) *KeyRateLimiter {
	rl := &KeyRateLimiter{
		visitors:  make(map[string]*visitor),
		reqPerMin: reqPerMin,
		burst:     burst,
		ttl:       ttl,
		done:      make(chan struct{}),
	}
	go rl.cleanupVisitors(ctx)
	return rl
}

// Done is closed once the cleanup goroutine has exited.
func (rl *KeyRateLimiter) Done() <-chan struct{} {
	return rl.done
}

func (rl *KeyRateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors[key]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	// chuyển req/phút -> rate.Limit (req/giây)
	rps := float64(rl.reqPerMin) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), rl.burst)
	rl.visitors[key] = &visitor{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *KeyRateLimiter) cleanupVisitors(ctx context.Context) {
	defer close(rl.done)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle(time.Now())
		}
	}
}

func (rl *KeyRateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.ttl {
			delete(rl.visitors, key)
		}
	}
}

// Allow dùng trực tiếp khi không đi qua gin (test, job nội bộ)
func (rl *KeyRateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// ====== Middleware dùng cho các route submit ======

// RateLimitSubmit giới hạn theo weblogin nếu đã xác thực, không thì theo IP.
func RateLimitSubmit(rl *KeyRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := SessionFrom(c).WebLogin()
		if key == "" {
			key = c.ClientIP() // Gin sẽ xét X-Forwarded-For nếu đã cấu hình TrustedProxies
		}
		if !rl.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too Many Requests",
				"hint":  "Please wait a moment before submitting again.",
			})
			return
		}
		c.Next()
	}
}
