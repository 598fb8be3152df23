package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/preview/3f51b5", nil)

	SecurityHeadersMiddleware()(c)

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("Expected nosniff header")
	}
	if w.Header().Get("X-Frame-Options") != "SAMEORIGIN" {
		t.Error("Expected SAMEORIGIN frame options")
	}
	if !strings.Contains(w.Header().Get("Content-Security-Policy"), "style-src 'self' 'unsafe-inline'") {
		t.Errorf("Unexpected CSP: %s", w.Header().Get("Content-Security-Policy"))
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should not be sent when TLS is disabled")
	}
}
