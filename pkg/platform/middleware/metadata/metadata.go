package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"sunsetguide/pkg/requestcontext"
)

// FormInstanceHeader carries the client's form instance identifier. Callers
// that set it get one-attempt-in-flight enforcement on the server side too.
const FormInstanceHeader = "X-Form-Instance"

const maxFormInstanceLength = 64

// ClientMetadata extracts client IP address, a reduced User-Agent label, and
// the form instance id from the request and adds them to the context for use
// by handlers and services. This middleware should be applied early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(),
			ClientIPFromRequest(r),
			DescribeUserAgent(r.Header.Get("User-Agent")),
		)
		if instance := strings.TrimSpace(r.Header.Get(FormInstanceHeader)); instance != "" && len(instance) <= maxFormInstanceLength {
			ctx = requestcontext.WithFormInstance(ctx, instance)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DescribeUserAgent reduces a raw User-Agent header to "browser/os" so logs
// keep the useful part without the full fingerprint.
func DescribeUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "unknown"
	}
	ua := useragent.New(raw)
	if ua.Bot() {
		name, _ := ua.Browser()
		return "bot/" + name
	}
	name, _ := ua.Browser()
	if name == "" {
		name = "unknown"
	}
	os := ua.OS()
	if os == "" {
		os = "unknown"
	}
	label := name + "/" + os
	if ua.Mobile() {
		label += "/mobile"
	}
	return label
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...);
	// the first one is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port"; IPv6 is "[::1]:port".
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return strings.Trim(addr[:idx], "[]")
		}
		return addr
	}

	return "unknown"
}
