package config

import (
	"fmt"
	"strings"
	"time"
)

// Report format names accepted in the output section of the config file.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// File represents the structure of the .pwstrength configuration file.
// Every field is optional; unset fields leave the Config untouched.
type File struct {
	Breach    BreachSection `yaml:"breach,omitempty"`
	Output    OutputSection `yaml:"output,omitempty"`
	BatchSize int           `yaml:"batch_size,omitempty"`
}

// BreachSection configures the breach lookup.
type BreachSection struct {
	// Enabled set to false is the same as --offline.
	Enabled *bool `yaml:"enabled,omitempty"`

	Endpoint string `yaml:"endpoint,omitempty"`

	// Timeout is a Go duration string such as "5s" or "1500ms".
	Timeout string `yaml:"timeout,omitempty"`

	Padding   *bool  `yaml:"padding,omitempty"`
	Proxy     string `yaml:"proxy,omitempty"`
	UserAgent string `yaml:"user_agent,omitempty"`
}

// OutputSection configures the report.
type OutputSection struct {
	// Format is one of "text", "json" or "markdown".
	Format string `yaml:"format,omitempty"`

	Color *bool `yaml:"color,omitempty"`
}

// Apply overlays the values set in the file onto cfg.
func (f *File) Apply(cfg *Config) error {
	b := f.Breach
	if b.Enabled != nil {
		cfg.Offline = !*b.Enabled
	}
	if b.Endpoint != "" {
		cfg.Endpoint = b.Endpoint
	}
	if b.Timeout != "" {
		d, err := time.ParseDuration(b.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, b.Timeout)
		}
		cfg.Timeout = d
	}
	if b.Padding != nil {
		cfg.Padding = *b.Padding
	}
	if b.Proxy != "" {
		cfg.ProxyAddress = b.Proxy
	}
	if b.UserAgent != "" {
		cfg.UserAgent = b.UserAgent
	}

	switch strings.ToLower(f.Output.Format) {
	case "":
	case FormatText:
		cfg.JSONReport, cfg.MarkdownReport = false, false
	case FormatJSON:
		cfg.JSONReport, cfg.MarkdownReport = true, false
	case FormatMarkdown, "md":
		cfg.JSONReport, cfg.MarkdownReport = false, true
	default:
		return fmt.Errorf("%w: %q", ErrInvalidReportFormat, f.Output.Format)
	}
	if f.Output.Color != nil {
		cfg.Color = *f.Output.Color
	}

	if f.BatchSize != 0 {
		cfg.BatchSize = f.BatchSize
	}
	return nil
}
