package middlewares

import (
	"strings"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ZapLogger logs every handled request at a level chosen from its status and
// latency.
func ZapLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if shouldSkipLog(path) {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", getRealIP(c)),
		}

		if ua := c.Get("User-Agent"); ua != "" && len(ua) < 200 {
			fields = append(fields, zap.String("user_agent", ua))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		logByStatus(fields, status, latency, method)
		return err
	}
}

func shouldSkipLog(path string) bool {
	if strings.HasPrefix(path, "/health") ||
		path == "/favicon.ico" ||
		path == "/robots.txt" {
		return true
	}
	if strings.HasPrefix(path, "/public/") ||
		strings.HasPrefix(path, "/.well-known/") {
		return true
	}
	return false
}

// getRealIP prefers proxy headers so logs carry the client address behind
// Cloudflare.
func getRealIP(c *fiber.Ctx) string {
	if ip := c.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if ip := c.Get("X-Forwarded-For"); ip != "" {
		parts := strings.Split(ip, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	return c.IP()
}

func logByStatus(fields []zap.Field, status int, latency time.Duration, method string) {
	msg := "request"
	if status >= 500 {
		msg = "server_error"
	} else if status >= 400 && status != 404 {
		msg = "client_error"
	} else if latency > time.Second {
		msg = "slow_request"
		fields = append(fields, zap.Bool("slow", true))
	}

	switch {
	case status >= 500:
		logconfig.Log.Error(msg, fields...)
	case status >= 400:
		if status == 404 {
			logconfig.Log.Info(msg, fields...)
		} else {
			logconfig.Log.Warn(msg, fields...)
		}
	default:
		if method != "GET" || latency > 500*time.Millisecond {
			logconfig.Log.Info(msg, fields...)
		} else {
			logconfig.Log.Debug(msg, fields...)
		}
	}
}
