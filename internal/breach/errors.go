package breach

import "errors"

// Lookup errors. Client.Count never returns them; they classify failures
// for logging so that every failure still collapses to a count of zero.
var (
	// ErrUnavailable is returned when the service cannot be reached,
	// including DNS failures, refused connections and timeouts.
	ErrUnavailable = errors.New("breach service unavailable")

	// ErrUnexpectedStatus is returned when the service answers with a
	// status other than 200 OK.
	ErrUnexpectedStatus = errors.New("unexpected breach service status")

	// ErrMalformedResponse is returned when a response line is not a
	// "SUFFIX:COUNT" pair with a non-negative decimal count.
	ErrMalformedResponse = errors.New("malformed breach service response")

	// ErrInvalidProxyAddress is returned by NewClient when the SOCKS5 proxy
	// address is not in "host:port" format.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")

	// ErrInvalidEndpoint is returned by NewClient when the endpoint is not
	// an absolute http or https URL.
	ErrInvalidEndpoint = errors.New("invalid breach endpoint: expected an http or https URL")
)
