package config

import (
	"errors"

	"github.com/nao1215/pwstrength/internal/breach"
)

// Configuration validation errors.
// These errors are returned by Config.Validate and File.Apply so that
// callers can use errors.Is for programmatic handling.
var (
	// ErrInvalidTimeout is returned when the breach lookup timeout is not
	// positive or cannot be parsed.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidReportFormat is returned when the config file names an
	// output format other than text, json or markdown.
	ErrInvalidReportFormat = errors.New("invalid report format: expected text, json or markdown")

	// ErrInvalidEndpoint is returned when the breach endpoint is not an
	// absolute http or https URL. It is the error breach.NewClient returns.
	ErrInvalidEndpoint = breach.ErrInvalidEndpoint

	// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address is
	// not in "host:port" format. It is the error breach.NewClient returns.
	ErrInvalidProxyAddress = breach.ErrInvalidProxyAddress
)
