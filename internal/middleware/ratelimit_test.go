package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// The environment is the one loaded from config, which may come from a
// config file rather than the process env. Enforcement must follow the
// value passed in, not os.Getenv.
func TestCheckRateLimit_EnforcesInProduction(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "production", "login", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be under the limit", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "production", "login", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different caller has its own counter.
	allowed, err = CheckRateLimit(ctx, rdb, "production", "login", "ip:5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_BypassedOutsideProduction(t *testing.T) {
	ctx := context.Background()

	// No Redis client at all: the bypass must short-circuit before any
	// store access.
	for _, env := range []string{"test", "development", ""} {
		allowed, err := CheckRateLimit(ctx, nil, env, "login", "ip:1.2.3.4", 1, time.Minute)
		require.NoError(t, err, "env %q", env)
		assert.True(t, allowed, "env %q", env)
	}
}

func TestCheckRateLimit_NilClientInProduction(t *testing.T) {
	_, err := CheckRateLimit(context.Background(), nil, "production", "login", "ip:1.2.3.4", 1, time.Minute)
	assert.Error(t, err)
}

func TestRateLimit_Returns429WhenExceeded(t *testing.T) {
	rdb := newTestRedis(t)

	app := fiber.New()
	app.Post("/auth", RateLimit(rdb, "production", 2, time.Minute, "login"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/auth", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/auth", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimit_DevelopmentNeverThrottles(t *testing.T) {
	rdb := newTestRedis(t)

	app := fiber.New()
	app.Post("/auth", RateLimit(rdb, "development", 1, time.Minute, "login"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/auth", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
