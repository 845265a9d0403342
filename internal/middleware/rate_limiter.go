package middleware

import (
	"net/http"
	"sync"
	"time"

	"sistemagestion/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Per-IP sliding-window limiters. Counters live in process memory, which is
// enough for a single instance behind the proxy; a second instance would need
// them moved to redis.

// ventanaIP counts requests from one IP inside the current window.
type ventanaIP struct {
	cuenta int
	cierre time.Time
	mu     sync.Mutex
}

type limitador struct {
	mu       sync.Mutex
	ventanas map[string]*ventanaIP
	limite   int
	duracion time.Duration
	mensaje  string
}

func newLimitador(limite int, duracion time.Duration, mensaje string) *limitador {
	l := &limitador{
		ventanas: make(map[string]*ventanaIP),
		limite:   limite,
		duracion: duracion,
		mensaje:  mensaje,
	}
	go l.purgar()
	return l
}

// admitir counts the request and reports whether it fits in the window.
func (l *limitador) admitir(ip string) (bool, time.Time) {
	l.mu.Lock()
	v, ok := l.ventanas[ip]
	if !ok {
		v = &ventanaIP{}
		l.ventanas[ip] = v
	}
	l.mu.Unlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	if now.After(v.cierre) {
		v.cuenta = 0
		v.cierre = now.Add(l.duracion)
	}
	v.cuenta++
	return v.cuenta <= l.limite, v.cierre
}

func (l *limitador) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, cierre := l.admitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", cierre.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// purgar drops expired windows so IPs that never come back don't accumulate.
func (l *limitador) purgar() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purgadas := 0
		for ip, v := range l.ventanas {
			v.mu.Lock()
			if now.After(v.cierre) {
				delete(l.ventanas, ip)
				purgadas++
			}
			v.mu.Unlock()
		}
		restantes := len(l.ventanas)
		l.mu.Unlock()

		if purgadas > 0 {
			log.Debug().
				Int("purgadas", purgadas).
				Int("restantes", restantes).
				Msg("ventanas de rate limit purgadas")
		}
	}
}

// LoginRateLimiter caps login attempts at 20 per minute per IP, slowing down
// credential stuffing without locking out a mistyped password.
func LoginRateLimiter() gin.HandlerFunc {
	l := newLimitador(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
	return l.handler()
}

// RateLimiter is the general API limiter; the router passes the budget
// (currently 1000 req/min per IP, generous for a back-office UI polling
// resúmenes and listados).
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimitador(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.")
	return l.handler()
}
