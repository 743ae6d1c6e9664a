package middleware

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
)

// RateLimit caps each client IP to limit requests per window for the
// wrapped routes, counting in Redis so the cap holds across replicas.
// A nil client or a Redis error lets the request through: limiting is
// protection, not a dependency.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, name string) echo.MiddlewareFunc {
    if rdb == nil || limit <= 0 {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ip := c.RealIP()
            if ip == "" {
                ip = "unknown"
            }
            key := "rl:" + name + ":" + ip
            ctx := c.Request().Context()

            count, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                return next(c)
            }
            if count == 1 {
                _ = rdb.Expire(ctx, key, window).Err()
            }
            if count > int64(limit) {
                ttl, _ := rdb.TTL(ctx, key).Result()
                secs := int(ttl / time.Second)
                if secs < 1 {
                    secs = 1
                }
                c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
                return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
            }
            return next(c)
        }
    }
}
