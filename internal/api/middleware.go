package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"airline_tycoon/internal/config"
)

func newCORS(cfg config.CORSConfig) *cors.Cors {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	slog.With("component", "cors").Debug("CORS configured",
		"allowed_origins", cfg.AllowedOrigins,
		"allowed_methods", methods,
	)
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: methods,
		AllowedHeaders: []string{"Content-Type"},
	})
}

// rateLimiter keeps one token bucket per client IP.
type rateLimiter struct {
	cfg     config.RateLimitConfig
	clients map[string]*rate.Limiter
	mu      sync.Mutex
	// done is closed when the cleanup loop exits.
	done chan struct{}
}

// newRateLimiter starts the idle-client cleanup, which runs until ctx ends.
func newRateLimiter(ctx context.Context, cfg config.RateLimitConfig) *rateLimiter {
	rl := &rateLimiter{
		cfg:     cfg,
		clients: make(map[string]*rate.Limiter),
		done:    make(chan struct{}),
	}
	if cfg.Enabled {
		go rl.cleanupClients(ctx)
	} else {
		close(rl.done)
	}
	return rl
}

func (rl *rateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.clients[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)
		rl.clients[ip] = limiter
	}
	return limiter
}

func (rl *rateLimiter) cleanupClients(ctx context.Context) {
	defer close(rl.done)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		rl.mu.Lock()
		// a full bucket means the client has been idle
		for ip, limiter := range rl.clients {
			if limiter.TokensAt(time.Now()) >= float64(rl.cfg.Burst) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.cfg.Enabled {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientIP(r)
		if !rl.getLimiter(ip).Allow() {
			slog.With("component", "rate_limit").Warn("Rate limit exceeded",
				"client_ip", ip,
				"method", r.Method,
				"path", r.URL.Path,
			)
			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusTooManyRequests, ErrorResponse{
				Error:   "rate_limited",
				Message: "rate limit exceeded",
				Code:    http.StatusTooManyRequests,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
