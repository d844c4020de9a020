package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"
	"interview-tracker/pkg/logger"
	"interview-tracker/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis and the in-memory store
	KeyPrefix string
	// Reject with 503 instead of falling back to memory when Redis errors
	FailClosed bool
}

// AuthRateLimitConfig limits signup and login attempts per client IP.
func AuthRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:auth:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

var errRedisResult = errors.New("unexpected redis result format")

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// RateLimiter counts requests per key in Redis when a client is given and in
// process memory otherwise.
type RateLimiter struct {
	config    RateLimitConfig
	client    *goredis.Client
	secLogger *security.SecurityLogger

	store     sync.Map
	sweepMu   sync.Mutex
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(config RateLimitConfig, client *goredis.Client, secLogger *security.SecurityLogger) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	return &RateLimiter{
		config:    config,
		client:    client,
		secLogger: secLogger,
		now:       time.Now,
	}
}

// Middleware enforces the limit. Over-limit requests get 429 with Retry-After.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		fullKey := rl.config.KeyPrefix + rl.config.KeyFunc(c)
		now := rl.now()

		var count int
		var resetAt time.Time

		if rl.client != nil {
			var err error
			count, resetAt, err = rl.checkRedis(c.Request.Context(), fullKey, now)
			if err != nil {
				logger.Log.Warn("rate limit store unavailable", "error", err, "fail_closed", rl.config.FailClosed)
				if rl.config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = rl.checkInMemory(fullKey, now)
			}
		} else {
			count, resetAt = rl.checkInMemory(fullKey, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if count > rl.config.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			rl.secLogger.LogRateLimitTriggered(c.Request.Context(),
				c.ClientIP(),
				c.Request.UserAgent(),
				c.GetString(string(domain.KeyRequestID)),
				c.FullPath(),
			)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(rl.config.Limit-count))
		c.Next()
	}
}

// checkRedis checks rate limit using Redis with atomic Lua script
func (rl *RateLimiter) checkRedis(ctx context.Context, key string, now time.Time) (int, time.Time, error) {
	ttlSeconds := int(rl.config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := rl.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, errRedisResult
	}
	count, ok := arr[0].(int64)
	if !ok {
		return 0, time.Time{}, errRedisResult
	}
	ttl, _ := arr[1].(int64)

	return int(count), now.Add(time.Duration(ttl) * time.Second), nil
}

// checkInMemory checks rate limit using the in-memory store
func (rl *RateLimiter) checkInMemory(key string, now time.Time) (int, time.Time) {
	rl.sweep(now)

	entryI, _ := rl.store.LoadOrStore(key, &rateLimitEntry{
		resetAt: now.Add(rl.config.Window),
	})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(rl.config.Window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

// sweep drops expired entries at most once per window.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.sweepMu.Lock()
	if now.Sub(rl.lastSweep) < rl.config.Window {
		rl.sweepMu.Unlock()
		return
	}
	rl.lastSweep = now
	rl.sweepMu.Unlock()

	rl.store.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			rl.store.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}
