package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP sets the real client IP into Gin context (key: "real_ip").
// Forwarding headers are only believed when the TCP peer is one of
// trustedProxies (IPs or CIDRs):
// 1) CF-Connecting-IP (Cloudflare), from a trusted peer
// 2) c.ClientIP(), which walks X-Forwarded-For through the proxies the
// engine trusts; engine.SetTrustedProxies must get the same list.
// With no trusted proxies the peer address is the client.
func RealIP(trustedProxies []string) gin.HandlerFunc {
	nets := parseCIDRs(trustedProxies)
	return func(c *gin.Context) {
		c.Set("real_ip", realIP(c, nets))
		c.Next()
	}
}

func realIP(c *gin.Context, trusted []*net.IPNet) string {
	if peer := net.ParseIP(c.RemoteIP()); peer != nil && contains(trusted, peer) {
		if ip := parseIP(c.GetHeader("CF-Connecting-IP")); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}

func parseCIDRs(list []string) []*net.IPNet {
	out := make([]*net.IPNet, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if !strings.Contains(s, "/") {
			ip := net.ParseIP(s)
			if ip == nil {
				continue
			}
			if ip.To4() != nil {
				s += "/32"
			} else {
				s += "/128"
			}
		}
		if _, n, err := net.ParseCIDR(s); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func contains(nets []*net.IPNet, ip net.IP) bool {
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func parseIP(s string) string {
	if ip := net.ParseIP(strings.TrimSpace(s)); ip != nil {
		return ip.String()
	}
	return ""
}
