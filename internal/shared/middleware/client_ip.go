package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const clientIPKey contextKey = "client_ip"

// ClientIP injects the client address into the request context so the
// contact intake service can record it without touching gin.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		c.Set("client_ip", ip)
		ctx := context.WithValue(c.Request.Context(), clientIPKey, ip)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ClientIPFromContext returns the recorded client IP, or "" when the
// middleware did not run (tests, worker).
func ClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}
