package service

import (
	"strings"
	"sync"
	"time"
)

// LoginLimiter limita los intentos de login por usuario dentro de una
// ventana deslizante.
type LoginLimiter interface {
	Allow(username string) bool
}

type loginLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewLoginLimiter crea un limitador en memoria.
func NewLoginLimiter(window time.Duration, max int) LoginLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &loginLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *loginLimiter) Allow(username string) bool {
	key := strings.ToLower(strings.TrimSpace(username))
	if key == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}
