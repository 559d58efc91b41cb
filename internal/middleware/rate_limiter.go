package middleware

import (
	"net/http"
	"sync"
	"time"

	"tiendaropa/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type rateMap struct {
	entries map[string]*rateEntry
	mu      sync.Mutex
}

func (m *rateMap) get(ip string) *rateEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[ip]
	if !ok {
		entry = &rateEntry{}
		m.entries[ip] = entry
	}
	return entry
}

func (m *rateMap) purge(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	purged := 0
	for ip, entry := range m.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(m.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

var (
	loginMap = &rateMap{entries: make(map[string]*rateEntry)}
	apiMap   = &rateMap{entries: make(map[string]*rateEntry)}
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return limit(loginMap, 20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
}

// RateLimiter is the general-purpose per-IP limiter applied to the whole API.
func RateLimiter(max int, window time.Duration) gin.HandlerFunc {
	return limit(apiMap, max, window, "Demasiadas solicitudes. Intente nuevamente en un momento.")
}

func limit(m *rateMap, max int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := m.get(c.ClientIP())

		entry.mu.Lock()
		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}
		entry.count++
		over := entry.count > max
		retryAt := entry.windowEnd
		entry.mu.Unlock()

		if over {
			c.Header("Retry-After", retryAt.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// Expired entries are purged periodically so IPs that never return do not
// accumulate.
const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			purged := loginMap.purge(now) + apiMap.purge(now)
			if purged > 0 {
				log.Debug().Int("purged", purged).Msg("rate limiter maps purged")
			}
		}
	}()
}
