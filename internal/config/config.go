package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/pwstrength/internal/breach"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pwstrength"

	// DefaultTimeout bounds a single breach lookup.
	DefaultTimeout = breach.DefaultTimeout

	// DefaultBatchSize is the number of passwords analyzed concurrently
	// with --list. Each in-flight analysis holds one breach request open.
	DefaultBatchSize = 4
)

// Config holds all configuration options for pwstrength.
// It is built once by the CLI and passed down; nothing reads it globally.
type Config struct {
	// Offline skips the breach lookup. Every password then counts as not
	// found in any breach.
	Offline bool

	// Endpoint is the k-anonymity range endpoint. The 5-character hash
	// prefix is appended to it.
	Endpoint string

	// Timeout bounds each breach lookup. A lookup that exceeds it counts
	// as not breached.
	Timeout time.Duration

	// Padding sends the Add-Padding header so that response sizes do not
	// reveal the prefix bucket.
	Padding bool

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format,
	// e.g. a local Tor daemon at 127.0.0.1:9050.
	ProxyAddress string

	// UserAgent is sent with every breach lookup.
	UserAgent string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string

	// Color enables ANSI colors in the text report.
	Color bool

	// ListFile is a file with one password per line. When set, every
	// non-empty line is analyzed and no password is read from the prompt.
	ListFile string

	// BatchSize is the number of passwords analyzed concurrently with ListFile.
	BatchSize int

	// Verbose enables debug logging. Secrets are still redacted.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Endpoint:  breach.DefaultEndpoint,
		Timeout:   DefaultTimeout,
		Padding:   true,
		UserAgent: breach.DefaultUserAgent,
		Color:     true,
		BatchSize: DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for pwstrength.
// On Linux: ~/.config/pwstrength
// On macOS: ~/Library/Application Support/pwstrength
// On Windows: %APPDATA%\pwstrength
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// Network settings are irrelevant when no lookup is made.
	if c.Offline {
		return nil
	}

	if !breach.IsValidEndpoint(c.Endpoint) {
		return ErrInvalidEndpoint
	}

	if c.ProxyAddress != "" && !breach.IsValidProxyAddress(c.ProxyAddress) {
		return ErrInvalidProxyAddress
	}

	return nil
}
