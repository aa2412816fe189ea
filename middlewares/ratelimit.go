package middlewares

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type rateBucket struct {
	count       int
	windowStart time.Time
}

// RateLimiter считает запросы по IP в фиксированном окне: счётчик
// сбрасывается на границе окна, без скольжения и без внешней синхронизации.
// Создаётся один раз на класс маршрутов и передаётся в роутер.
type RateLimiter struct {
	mu           sync.Mutex
	window       time.Duration
	max          int
	onlyFailures bool
	message      string
	log          *zap.Logger
	now          func() time.Time
	buckets      map[string]*rateBucket
}

func NewRateLimiter(window time.Duration, max int, onlyFailures bool, message string, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		window:       window,
		max:          max,
		onlyFailures: onlyFailures,
		message:      message,
		log:          log,
		now:          time.Now,
		buckets:      make(map[string]*rateBucket),
	}
}

func (l *RateLimiter) bucket(key string) *rateBucket {
	b, ok := l.buckets[key]
	if !ok {
		b = &rateBucket{windowStart: l.now()}
		l.buckets[key] = b
	}
	if l.now().Sub(b.windowStart) >= l.window {
		b.count = 0
		b.windowStart = l.now()
	}
	return b
}

func (l *RateLimiter) exceeded(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bucket(key).count >= l.max
}

func (l *RateLimiter) record(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bucket(key).count++
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	retryAfter := fmt.Sprintf("%d minutes", int(l.window/time.Minute))
	if l.window < time.Minute*2 {
		retryAfter = fmt.Sprintf("%d seconds", int(l.window/time.Second))
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if l.exceeded(ip) {
			l.log.Warn("превышен лимит запросов",
				zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			c.Header("Retry-After", strconv.Itoa(int(l.window/time.Second)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success":    false,
				"error":      "Too Many Requests",
				"message":    l.message,
				"retryAfter": retryAfter,
			})
			return
		}

		c.Next()

		// Строгий режим учитывает только неудачные попытки.
		if l.onlyFailures && c.Writer.Status() < http.StatusBadRequest {
			return
		}
		l.record(ip)
	}
}
