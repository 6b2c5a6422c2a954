// Package http provides the net/http based edges of the service: the
// outbound page Fetcher and the inbound API Server.
package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/readview"
)

// DefaultFetchTimeout is the default timeout for outbound requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMaxContentSize caps response bodies at 10 MB.
const DefaultMaxContentSize = 10 << 20

// userAgent identifies outbound requests.
const userAgent = "readview/1.0 (+https://github.com/fwojciec/readview)"

// Ensure Fetcher implements readview.Fetcher at compile time.
var _ readview.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs over plain HTTP. It does not
// execute JavaScript; JavaScript-rendered pages are out of scope.
type Fetcher struct {
	client         *http.Client
	timeout        time.Duration
	maxContentSize int64
	recheckDNS     bool
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the timeout for outbound requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxContentSize caps the number of response bytes read.
func WithMaxContentSize(n int64) FetcherOption {
	return func(f *Fetcher) {
		f.maxContentSize = n
	}
}

// WithPrivateIPRecheck re-validates resolved addresses at dial time,
// closing the DNS-rebinding gap the literal hostname check leaves
// open. Off by default to preserve the legacy literal-only behavior.
func WithPrivateIPRecheck() FetcherOption {
	return func(f *Fetcher) {
		f.recheckDNS = true
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout:        DefaultFetchTimeout,
		maxContentSize: DefaultMaxContentSize,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := &http.Transport{
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}

	if f.recheckDNS {
		transport.DialContext = safeDialContext
	}

	f.client = &http.Client{
		Transport: transport,
		Timeout:   f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("too many redirects (max 5)")
			}
			// A redirect must not escape to a blocked target.
			if err := readview.ValidateURL(req.URL.String()); err != nil {
				return fmt.Errorf("redirect blocked: %w", err)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-2xx responses are returned as *readview.StatusError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &readview.StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxContentSize))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. A no-op for the plain HTTP fetcher.
func (f *Fetcher) Close() error {
	return nil
}

// safeDialContext resolves the host and refuses to connect when any
// resolved address falls in a private or reserved range.
func safeDialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}

	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("DNS lookup failed: %w", err)
	}

	for _, ipAddr := range ips {
		if readview.IsPrivateIP(ipAddr.IP) {
			return nil, fmt.Errorf("connection to private IP %s is not allowed", ipAddr.IP)
		}
	}

	var lastErr error
	for _, ipAddr := range ips {
		conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ipAddr.IP.String(), port))
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("no addresses resolved for %s", host)
}
