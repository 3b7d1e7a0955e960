package breach

import (
	"context"
	"crypto/sha1" //nolint:gosec // SHA-1 is mandated by the range protocol, not used for security
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

const (
	// DefaultEndpoint is the Pwned Passwords range API. The hash prefix is
	// appended to it.
	DefaultEndpoint = "https://api.pwnedpasswords.com/range/"

	// DefaultTimeout bounds a single lookup. A lookup that exceeds it
	// counts as not breached.
	DefaultTimeout = 5 * time.Second

	// DefaultUserAgent identifies the client. The Pwned Passwords API
	// rejects requests without a User-Agent.
	DefaultUserAgent = "pwstrength (+https://github.com/nao1215/pwstrength)"

	// PrefixLength is the number of hex characters sent to the service.
	PrefixLength = 5

	// maxResponseSize caps how much of a response body is read. Padded
	// range responses are well under this size.
	maxResponseSize = 2 << 20
)

// Client queries a k-anonymity range endpoint.
// A Client has no mutable state after construction and is safe for
// concurrent use.
type Client struct {
	// endpoint is the base URL; the prefix is appended after a slash.
	endpoint string

	// httpClient performs the request.
	httpClient *http.Client

	// timeout bounds each lookup. Zero disables the bound.
	timeout time.Duration

	// userAgent is sent with every request.
	userAgent string

	// padding asks the service to pad responses with fake zero-count
	// suffixes so that the response size does not leak the prefix bucket.
	padding bool

	// proxyAddress is an optional SOCKS5 proxy in "host:port" format.
	proxyAddress string

	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the range endpoint, e.g. "https://api.pwnedpasswords.com/range/".
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for lookups.
// It takes precedence over WithProxy.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-lookup timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithPadding enables or disables the Add-Padding request header.
func WithPadding(padding bool) Option {
	return func(c *Client) {
		c.padding = padding
	}
}

// WithProxy routes lookups through a SOCKS5 proxy such as a local Tor daemon.
func WithProxy(address string) Option {
	return func(c *Client) {
		c.proxyAddress = address
	}
}

// WithLogger sets the logger used to record lookup failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client. Without options it queries DefaultEndpoint
// directly with DefaultTimeout and padding enabled.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		endpoint:  DefaultEndpoint,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		padding:   true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	if !IsValidEndpoint(c.endpoint) {
		return nil, ErrInvalidEndpoint
	}

	if c.httpClient == nil {
		httpClient, err := newHTTPClient(c.proxyAddress)
		if err != nil {
			return nil, err
		}
		c.httpClient = httpClient
	}

	return c, nil
}

// newHTTPClient builds the default HTTP client, dialing through a SOCKS5
// proxy when proxyAddress is set.
func newHTTPClient(proxyAddress string) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyAddress != "" {
		if !IsValidProxyAddress(proxyAddress) {
			return nil, ErrInvalidProxyAddress
		}

		dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		// The environment proxy must not bypass the SOCKS5 route.
		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	}

	return &http.Client{Transport: transport}, nil
}

// IsValidProxyAddress reports whether address is "host:port" with a
// non-empty host and a port between 1 and 65535.
func IsValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 65535
}

// IsValidEndpoint reports whether endpoint is an absolute http(s) URL.
func IsValidEndpoint(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// HashPrefix returns the uppercase SHA-1 digest of the password's UTF-8
// bytes split into the 5-character prefix and the 35-character suffix.
func HashPrefix(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password)) //nolint:gosec // required by the range protocol
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:PrefixLength], digest[PrefixLength:]
}

// Count returns how many times the password appears in the breach corpus.
// It returns 0 when the password is not found and when the lookup fails
// for any reason.
func (c *Client) Count(ctx context.Context, password string) int {
	prefix, suffix := HashPrefix(password)

	count, err := c.lookup(ctx, prefix, suffix)
	if err != nil {
		c.logger.Warn("breach lookup failed, treating password as not breached",
			"prefix", prefix,
			"error", err,
		)
		return 0
	}

	c.logger.Debug("breach lookup completed", "prefix", prefix, "found", count > 0)
	return count
}

// lookup fetches the range for prefix and searches it for suffix.
// Only prefix is placed on the wire.
func (c *Client) lookup(ctx context.Context, prefix, suffix string) (int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rangeURL(prefix), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.padding {
		req.Header.Set("Add-Padding", "true")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return parseRange(io.LimitReader(resp.Body, maxResponseSize), suffix)
}

// rangeURL joins the endpoint and the prefix with exactly one slash.
func (c *Client) rangeURL(prefix string) string {
	return strings.TrimSuffix(c.endpoint, "/") + "/" + prefix
}

// Endpoint returns the configured range endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}
