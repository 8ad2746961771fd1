package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// IdempotencyGuard tracks processed Idempotency-Key values. The gateway
// itself never retries, so this guard is the only thing standing between an
// impatient client and a double charge.
type IdempotencyGuard interface {
	Seen(ctx context.Context, key string) (bool, error)
}

type redisIdempotencyGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func (g *redisIdempotencyGuard) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.prefix+":"+key, "1", g.ttl).Result()
	if err != nil {
		return false, err
	}
	// false => already exists => duplicate
	return !ok, nil
}

type memoryIdempotencyGuard struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	ttl    time.Duration
	nextGC time.Time
}

func newMemoryIdempotencyGuard(ttl time.Duration) *memoryIdempotencyGuard {
	now := time.Now()
	return &memoryIdempotencyGuard{
		seen:   make(map[string]time.Time),
		ttl:    ttl,
		nextGC: now.Add(ttl),
	}
}

func (g *memoryIdempotencyGuard) Seen(_ context.Context, key string) (bool, error) {
	now := time.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if exp, ok := g.seen[key]; ok && exp.After(now) {
		return true, nil
	}

	g.seen[key] = now.Add(g.ttl)
	if now.After(g.nextGC) {
		for k, exp := range g.seen {
			if exp.Before(now) {
				delete(g.seen, k)
			}
		}
		g.nextGC = now.Add(g.ttl)
	}

	return false, nil
}

// NewIdempotencyGuard builds a Redis guard and falls back to in-memory on
// failure.
func NewIdempotencyGuard(addr, pass string, db int, ttl time.Duration) (IdempotencyGuard, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if addr == "" {
		return newMemoryIdempotencyGuard(ttl), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return newMemoryIdempotencyGuard(ttl), err
	}

	return &redisIdempotencyGuard{
		client: client,
		prefix: "pin:idem",
		ttl:    ttl,
	}, nil
}

// Idempotency rejects a repeated Idempotency-Key with 409 before any
// gateway call happens. Requests without the header pass through untouched.
func Idempotency(guard IdempotencyGuard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if guard == nil {
				return next(c)
			}

			key := c.Request().Header.Get("Idempotency-Key")
			if key == "" {
				return next(c)
			}

			isDuplicate, err := guard.Seen(c.Request().Context(), key)
			if err != nil {
				return next(c)
			}
			if isDuplicate {
				return c.JSON(http.StatusConflict, map[string]interface{}{
					"status": false,
					"msg":    "Duplicate request: " + key,
					"obj":    nil,
				})
			}

			return next(c)
		}
	}
}
