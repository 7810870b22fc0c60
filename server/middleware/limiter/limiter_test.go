package limiter

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(2, 1, time.Hour)

	assert.True(t, bucket.Take(1))
	assert.True(t, bucket.Take(1))
	assert.False(t, bucket.Take(1))
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	assert.True(t, bucket.Take(1))
	assert.False(t, bucket.Take(1))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, bucket.Take(1))
}

func TestInMemoryStorage(t *testing.T) {
	s := NewInMemoryStorage()

	got, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	bucket := NewTokenBucket(1, 1, time.Second)
	require.NoError(t, s.Set("key", bucket))

	got, err = s.Get("key")
	require.NoError(t, err)
	assert.Same(t, bucket, got)

	require.NoError(t, s.Delete("key"))
	got, err = s.Get("key")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Set("key", bucket))
	require.NoError(t, s.Reset())
	got, err = s.Get("key")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMiddlewareLimitsRequests(t *testing.T) {
	app := fiber.New()
	app.Use(New(Config{
		Capacity:     1,
		RefillRate:   1,
		RefillPeriod: time.Hour,
		Storage:      NewInMemoryStorage(),
	}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestMiddlewareNextSkips(t *testing.T) {
	app := fiber.New()
	app.Use(New(Config{
		Capacity:     1,
		RefillRate:   1,
		RefillPeriod: time.Hour,
		Storage:      NewInMemoryStorage(),
		Next: func(c *fiber.Ctx) bool {
			return true
		},
	}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
