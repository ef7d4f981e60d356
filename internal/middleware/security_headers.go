package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds security headers to all HTTP responses.
// Paths under cacheablePrefixes (public uploads) keep their own caching headers.
func SecurityHeadersMiddleware(cacheablePrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), interest-cohort=()")
		c.Header("X-Permitted-Cross-Domain-Policies", "none")

		cacheable := false
		for _, prefix := range cacheablePrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				cacheable = true
				break
			}
		}
		if !cacheable {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
			c.Header("Pragma", "no-cache")
		}

		c.Next()
	}
}
