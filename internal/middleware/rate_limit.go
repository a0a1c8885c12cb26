package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// TokenBucket はトークンバケット方式のリミッター
type TokenBucket struct {
	capacity   int64     // バケット容量
	tokens     int64     // 現在のトークン数
	refillRate int64     // 毎秒補充するトークン数
	lastRefill time.Time // 前回補充時刻
	mu         sync.Mutex
}

// DI
func NewTokenBucket(capacity, refillRate int64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow はリクエストを許可できるか返す
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	//トークン補充
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := int64(elapsed.Seconds()) * tb.refillRate
	if tokensToAdd > 0 {
		tb.tokens = tb.tokens + tokensToAdd
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// RateLimit はIPごとのトークンバケットで流量を制限するechoミドルウェア
func RateLimit(capacity, refillRate int64) echo.MiddlewareFunc {
	var mu sync.Mutex
	buckets := make(map[string]*TokenBucket)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			mu.Lock()
			tb, ok := buckets[ip]
			if !ok {
				tb = NewTokenBucket(capacity, refillRate)
				buckets[ip] = tb
			}
			mu.Unlock()

			if !tb.Allow() {
				return c.JSON(http.StatusTooManyRequests, errorJSON("too many requests"))
			}
			return next(c)
		}
	}
}
