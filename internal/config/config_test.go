package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/pwstrength/internal/breach"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Endpoint is the Pwned Passwords range API", func(t *testing.T) {
		t.Parallel()
		if cfg.Endpoint != "https://api.pwnedpasswords.com/range/" {
			t.Errorf("expected Pwned Passwords endpoint, got '%s'", cfg.Endpoint)
		}
	})

	t.Run("default Timeout is 5 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 5*time.Second {
			t.Errorf("expected Timeout to be 5s, got %v", cfg.Timeout)
		}
	})

	t.Run("default BatchSize is 4", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 4 {
			t.Errorf("expected BatchSize to be 4, got %d", cfg.BatchSize)
		}
	})

	t.Run("padding and color are on, offline is off", func(t *testing.T) {
		t.Parallel()
		if !cfg.Padding {
			t.Error("expected Padding to be true")
		}
		if !cfg.Color {
			t.Error("expected Color to be true")
		}
		if cfg.Offline {
			t.Error("expected Offline to be false")
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config returns nil",
			modify: func(*Config) {},
		},
		{
			name:    "zero timeout returns ErrInvalidTimeout",
			modify:  func(c *Config) { c.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative timeout returns ErrInvalidTimeout",
			modify:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "zero batch size returns ErrInvalidBatchSize",
			modify:  func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name: "json and markdown together returns ErrConflictingReportFormats",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "relative endpoint returns ErrInvalidEndpoint",
			modify:  func(c *Config) { c.Endpoint = "/range/" },
			wantErr: ErrInvalidEndpoint,
		},
		{
			name:    "ftp endpoint returns ErrInvalidEndpoint",
			modify:  func(c *Config) { c.Endpoint = "ftp://example.com/range/" },
			wantErr: ErrInvalidEndpoint,
		},
		{
			name:    "proxy without port returns ErrInvalidProxyAddress",
			modify:  func(c *Config) { c.ProxyAddress = "127.0.0.1" },
			wantErr: ErrInvalidProxyAddress,
		},
		{
			name:   "valid proxy is accepted",
			modify: func(c *Config) { c.ProxyAddress = "127.0.0.1:9050" },
		},
		{
			name: "offline ignores network settings",
			modify: func(c *Config) {
				c.Offline = true
				c.Endpoint = ""
				c.ProxyAddress = "bad"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }

// TestFileApply tests that config file values overlay the defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file leaves defaults untouched", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := (&File{}).Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *cfg != *NewConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("all fields are applied", func(t *testing.T) {
		t.Parallel()

		f := &File{
			Breach: BreachSection{
				Enabled:   boolPtr(false),
				Endpoint:  "http://127.0.0.1:8080/range/",
				Timeout:   "1500ms",
				Padding:   boolPtr(false),
				Proxy:     "127.0.0.1:9050",
				UserAgent: "custom-agent",
			},
			Output: OutputSection{
				Format: "JSON",
				Color:  boolPtr(false),
			},
			BatchSize: 8,
		}

		cfg := NewConfig()
		if err := f.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.Offline {
			t.Error("expected Offline when breach.enabled is false")
		}
		if cfg.Endpoint != "http://127.0.0.1:8080/range/" {
			t.Errorf("unexpected Endpoint %q", cfg.Endpoint)
		}
		if cfg.Timeout != 1500*time.Millisecond {
			t.Errorf("unexpected Timeout %v", cfg.Timeout)
		}
		if cfg.Padding {
			t.Error("expected Padding false")
		}
		if cfg.ProxyAddress != "127.0.0.1:9050" {
			t.Errorf("unexpected ProxyAddress %q", cfg.ProxyAddress)
		}
		if cfg.UserAgent != "custom-agent" {
			t.Errorf("unexpected UserAgent %q", cfg.UserAgent)
		}
		if !cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected JSON report format")
		}
		if cfg.Color {
			t.Error("expected Color false")
		}
		if cfg.BatchSize != 8 {
			t.Errorf("unexpected BatchSize %d", cfg.BatchSize)
		}
	})

	t.Run("markdown format", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := (&File{Output: OutputSection{Format: "markdown"}}).Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.JSONReport || !cfg.MarkdownReport {
			t.Error("expected Markdown report format")
		}
	})

	t.Run("invalid timeout returns ErrInvalidTimeout", func(t *testing.T) {
		t.Parallel()

		err := (&File{Breach: BreachSection{Timeout: "soon"}}).Apply(NewConfig())
		if !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("unknown format returns ErrInvalidReportFormat", func(t *testing.T) {
		t.Parallel()

		err := (&File{Output: OutputSection{Format: "html"}}).Apply(NewConfig())
		if !errors.Is(err, ErrInvalidReportFormat) {
			t.Errorf("expected ErrInvalidReportFormat, got %v", err)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.pwstrength")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".pwstrength")
		content := `breach:
  enabled: true
  endpoint: "https://example.com/range/"
  timeout: 10s
  padding: false
  proxy: "127.0.0.1:9150"
output:
  format: markdown
  color: false
batch_size: 2
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		f, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if f.Breach.Enabled == nil || !*f.Breach.Enabled {
			t.Error("expected breach.enabled true")
		}
		if f.Breach.Endpoint != "https://example.com/range/" {
			t.Errorf("unexpected endpoint %q", f.Breach.Endpoint)
		}
		if f.Breach.Timeout != "10s" {
			t.Errorf("unexpected timeout %q", f.Breach.Timeout)
		}
		if f.Breach.Padding == nil || *f.Breach.Padding {
			t.Error("expected breach.padding false")
		}
		if f.Output.Format != "markdown" {
			t.Errorf("unexpected format %q", f.Output.Format)
		}
		if f.BatchSize != 2 {
			t.Errorf("unexpected batch_size %d", f.BatchSize)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".pwstrength")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if err == nil {
			t.Fatal("expected error for invalid YAML")
		}
		if !strings.Contains(err.Error(), configPath) {
			t.Errorf("expected error to name the file, got %v", err)
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("breach: {}"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("finds config in current directory", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte("breach: {}"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		t.Chdir(dir)

		got := FindConfigFile("")
		if filepath.Base(got) != DefaultConfigFile || filepath.Dir(got) == "" {
			t.Errorf("expected %q, got %q", configPath, got)
		}
	})
}

func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Fatal("expected non-empty XDG config dir")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("expected dir to end with %q, got %q", AppName, dir)
	}
}

// TestValidateMatchesBreachClient checks that Validate and breach.NewClient
// reject the same network settings with the same errors.
func TestValidateMatchesBreachClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		proxy    string
		wantErr  error
	}{
		{name: "relative endpoint", endpoint: "/range/", wantErr: ErrInvalidEndpoint},
		{name: "endpoint without host", endpoint: "http://", wantErr: ErrInvalidEndpoint},
		{name: "proxy without port", endpoint: breach.DefaultEndpoint, proxy: "127.0.0.1", wantErr: ErrInvalidProxyAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			cfg.Endpoint = tt.endpoint
			cfg.ProxyAddress = tt.proxy

			validateErr := cfg.Validate()
			_, clientErr := breach.NewClient(breach.WithEndpoint(tt.endpoint), breach.WithProxy(tt.proxy))

			if !errors.Is(validateErr, tt.wantErr) {
				t.Errorf("Validate() error = %v, expected %v", validateErr, tt.wantErr)
			}
			if !errors.Is(clientErr, tt.wantErr) {
				t.Errorf("NewClient() error = %v, expected %v", clientErr, tt.wantErr)
			}
		})
	}
}
