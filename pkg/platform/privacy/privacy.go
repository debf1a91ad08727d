// Package privacy reduces personal data to log-safe forms.
package privacy

import (
	"encoding/hex"
	"net"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// DigestEmail returns a short, stable BLAKE2b digest of a normalized email so
// log lines from the same submitter can be correlated without storing the
// address. Key may be nil.
func DigestEmail(email string, key []byte) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ""
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// Keys longer than 64 bytes are rejected by blake2b; fall back to unkeyed.
		sum := blake2b.Sum256([]byte(normalized))
		return hex.EncodeToString(sum[:8])
	}
	_, _ = h.Write([]byte(normalized))
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// AnonymizeIP truncates an address to its network prefix (/24 for IPv4,
// /48 for IPv6).
func AnonymizeIP(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return ""
	}
	if v4 := parsed.To4(); v4 != nil {
		return v4.Mask(net.CIDRMask(24, 32)).String()
	}
	return parsed.Mask(net.CIDRMask(48, 128)).String()
}
