package limiter

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

type TokenBucket struct {
	Capacity     int64
	Tokens       int64
	RefillRate   int64
	RefillPeriod time.Duration
	LastRefill   time.Time
	mu           sync.Mutex
}

func NewTokenBucket(capacity, refillRate int64, refillPeriod time.Duration) *TokenBucket {
	return &TokenBucket{
		Capacity:     capacity,
		Tokens:       capacity,
		RefillRate:   refillRate,
		RefillPeriod: refillPeriod,
		LastRefill:   time.Now(),
	}
}

func (tb *TokenBucket) Take(n int64) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.Tokens >= n {
		tb.Tokens -= n
		return true
	}
	return false
}

func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.LastRefill)

	if elapsed >= tb.RefillPeriod {
		periods := int64(elapsed / tb.RefillPeriod)
		tb.Tokens += periods * tb.RefillRate
		if tb.Tokens > tb.Capacity {
			tb.Tokens = tb.Capacity
		}
		tb.LastRefill = now
	}
}

func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		key := cfg.KeyGenerator(c)

		bucket, err := cfg.Storage.Get(key)
		if err != nil {
			return err
		}

		if bucket == nil {
			bucket = NewTokenBucket(cfg.Capacity, cfg.RefillRate, cfg.RefillPeriod)
			if err := cfg.Storage.Set(key, bucket); err != nil {
				return err
			}
		}

		if !bucket.Take(1) {
			return cfg.LimitReachedHandler(c)
		}

		return c.Next()
	}
}
