package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisLoginAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisLoginLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisLoginLimiter crea un limitador respaldado por Redis, compartible
// entre instancias del servicio.
func NewRedisLoginLimiter(client *redis.Client, window time.Duration, max int) LoginLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisLoginLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "login:rl:",
	}
}

func (l *redisLoginLimiter) Allow(username string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key := strings.ToLower(strings.TrimSpace(username))
	if key == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisLoginAllowScript, []string{l.prefix + key}, seconds).Int()
	if err != nil {
		// Si Redis no responde no se bloquea el login.
		return true
	}
	return count <= l.max
}
