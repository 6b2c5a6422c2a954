package readview

import (
	"net"
	"net/url"
	"strings"
)

// DemoHost is the sentinel hostname that short-circuits ingestion to
// the built-in fixture document instead of making a network call.
const DemoHost = "readview.example"

// Pre-compiled CIDR networks for private/reserved IP ranges.
// Parsed once at package initialization.
var (
	cgnat    *net.IPNet // 100.64.0.0/10 - carrier-grade NAT
	v6unique *net.IPNet // fc00::/7 - IPv6 unique local
	v6link   *net.IPNet // fe80::/10 - IPv6 link-local
)

func init() {
	var err error

	_, cgnat, err = net.ParseCIDR("100.64.0.0/10")
	if err != nil {
		panic("invalid CGNAT CIDR: " + err.Error())
	}

	_, v6unique, err = net.ParseCIDR("fc00::/7")
	if err != nil {
		panic("invalid IPv6 unique local CIDR: " + err.Error())
	}

	_, v6link, err = net.ParseCIDR("fe80::/10")
	if err != nil {
		panic("invalid IPv6 link-local CIDR: " + err.Error())
	}
}

// ValidateURL validates a URL for ingestion (SSRF prevention).
// It requires an absolute http or https URL and blocks localhost,
// private IP literals, and local domains.
//
// The check inspects the literal hostname only; it does not resolve
// DNS. http.Fetcher optionally re-checks resolved addresses at dial
// time to close the DNS-rebinding gap.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL format")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Errorf(EINVALID, "URL scheme %q not allowed", parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return Errorf(EINVALID, "URL host required")
	}

	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return Errorf(EINVALID, "localhost URLs are not allowed")
	}

	if strings.HasSuffix(host, ".local") || strings.HasSuffix(host, ".internal") {
		return Errorf(EINVALID, "local domain URLs are not allowed")
	}

	if ip := net.ParseIP(host); ip != nil && IsPrivateIP(ip) {
		return Errorf(EINVALID, "private or loopback addresses are not allowed")
	}

	return nil
}

// IsPrivateIP reports whether an IP is in a private or reserved range.
// It handles IPv4, IPv6, and IPv6-mapped IPv4 addresses.
func IsPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
		return true
	}

	// IPv6-mapped IPv4 addresses (::ffff:x.x.x.x) re-checked as IPv4.
	if v4 := ip.To4(); v4 != nil {
		ip = v4
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() {
			return true
		}
	}

	return cgnat.Contains(ip) || v6unique.Contains(ip) || v6link.Contains(ip)
}

// IsDemoURL reports whether a URL designates the built-in demo
// document. Demo URLs bypass network fetching entirely: any URL
// containing the substring "demo" (case-insensitive), or whose
// hostname is or ends in DemoHost, qualifies.
func IsDemoURL(rawURL string) bool {
	if strings.Contains(strings.ToLower(rawURL), "demo") {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	return host == DemoHost || strings.HasSuffix(host, "."+DemoHost)
}
