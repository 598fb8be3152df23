package middleware

import (
	"log"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/palettekitty/internal/config"
)

// IPFilterMiddleware blocks requests from addresses in the CIDR blocklist.
// Bare IPs are treated as single-host ranges.
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blockedCIDRs := ParseCIDRs(blocklist)

	return func(c *gin.Context) {
		if len(blockedCIDRs) == 0 {
			c.Next()
			return
		}

		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				c.AbortWithStatus(403)
				return
			}
		}

		c.Next()
	}
}

// ParseCIDRs parses a blocklist, skipping invalid entries
func ParseCIDRs(entries []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				log.Printf("ignoring invalid blocklist entry %q", entry)
				continue
			}
			bits := 128
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}

		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			log.Printf("ignoring invalid blocklist entry %q: %v", entry, err)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets
}

// extractIP extracts the client IP from the request
func extractIP(c *gin.Context) net.IP {
	return net.ParseIP(getClientIP(c))
}

// getClientIP returns the client address. Behind a proxy the first
// X-Forwarded-For entry is used.
func getClientIP(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" && config.GetBool("server.behind_proxy") {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Use SplitHostPort to properly handle IPv6 addresses with brackets
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
