package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/palettekitty/internal/config"
)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// Preview pages only need inline styles
		csp := "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"script-src 'none'; " +
			"frame-ancestors 'self'"
		c.Header("Content-Security-Policy", csp)

		c.Header("Referrer-Policy", "no-referrer")

		// HTTP Strict Transport Security (HSTS) - only if TLS is terminated in front of us
		if config.GetBool("server.tls_enabled") {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
