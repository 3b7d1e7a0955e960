package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/nao1215/pwstrength/internal/analyzer"
	"github.com/nao1215/pwstrength/internal/breach"
	"github.com/nao1215/pwstrength/internal/config"
	"github.com/nao1215/pwstrength/internal/log"
	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/prompt"
	"github.com/nao1215/pwstrength/internal/report"
	"github.com/spf13/cobra"
)

var (
	// ErrNoPassword is returned when no password was given as argument,
	// entered at the prompt, or found in the list file.
	ErrNoPassword = errors.New("no password provided")

	// ErrPasswordWithList is returned when a password argument is combined
	// with --list.
	ErrPasswordWithList = errors.New("a password argument cannot be combined with --list")
)

// maxListLineSize bounds a single line of a --list file.
const maxListLineSize = 64 * 1024

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Analyze the strength of a password",
		Long: `Check scores a password from 0 to 100 and explains the score.

If no password is given, it is read from the terminal without echo.
Passing a password as an argument may leave it in your shell history.

The password is checked against known data breaches with a k-anonymity
range lookup: only the first 5 characters of its SHA-1 hash are sent.
If the breach service cannot be reached, the password counts as not
breached. Use --offline to skip the lookup entirely.

Examples:
  # Prompt for the password
  pwstrength check

  # Analyze a password given as argument
  pwstrength check 'correct horse battery staple'

  # Analyze every line of a file
  pwstrength check --list passwords.txt

  # Route the breach lookup through Tor
  pwstrength check --proxy 127.0.0.1:9050

  # Output JSON report without a breach lookup
  pwstrength check --offline --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}

	// Input flags
	cmd.Flags().StringP("list", "l", "",
		"Analyze each non-empty line of the given file")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses with --list")

	// Breach lookup flags
	cmd.Flags().Bool("offline", false,
		"Skip the breach lookup")
	cmd.Flags().String("endpoint", breach.DefaultEndpoint,
		"k-anonymity range endpoint")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the breach lookup")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy for the breach lookup (e.g., 127.0.0.1:9050)")
	cmd.Flags().Bool("no-padding", false,
		"Do not request padded responses from the breach service")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pwstrength in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-color", false,
		"Disable colored output")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if cfg.ListFile != "" && len(args) > 0 {
		return ErrPasswordWithList
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose, getBoolFlag(cmd, "log-json"))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	counter, err := newBreachCounter(cfg, logger)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if cfg.Offline {
		fmt.Fprintln(cmd.ErrOrStderr(), "Breach check skipped (offline mode).")
	}

	a := analyzer.New(counter,
		analyzer.WithLogger(logger),
		analyzer.WithConcurrency(cfg.BatchSize),
	)
	logger.Debug("analyzer ready", "checks", a.CheckNames())

	var r *model.Report
	if cfg.ListFile != "" {
		r, err = checkList(ctx, a, cfg.ListFile)
	} else {
		r, err = checkSingle(ctx, cmd, a, logger, args)
	}
	if err != nil {
		return err
	}

	return outputReport(cmd, cfg, r)
}

// checkSingle analyzes the password from args or the prompt.
func checkSingle(ctx context.Context, cmd *cobra.Command, a *analyzer.Analyzer, logger *slog.Logger, args []string) (*model.Report, error) {
	var password string
	if len(args) == 1 {
		password = args[0]
	}

	if password == "" {
		p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
		logger.Debug("reading password", "interactive", p.IsInteractive())

		var err error
		password, err = p.ReadPassword(prompt.DefaultMessage)
		if err != nil {
			return nil, err
		}
	}

	if password == "" {
		return nil, ErrNoPassword
	}

	result := a.Analyze(ctx, password)
	// An interrupted breach lookup reads as not breached.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	r := model.NewReport(time.Now())
	r.AddEntry("", result)
	return r, nil
}

// checkList analyzes every non-empty line of path. Entries are labeled by
// line number so that the report never contains a password.
func checkList(ctx context.Context, a *analyzer.Analyzer, path string) (*model.Report, error) {
	passwords, lines, err := readPasswordList(path)
	if err != nil {
		return nil, err
	}
	if len(passwords) == 0 {
		return nil, ErrNoPassword
	}

	results, err := a.AnalyzeAll(ctx, passwords)
	if err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	r := model.NewReport(time.Now())
	for i, result := range results {
		r.AddEntry(fmt.Sprintf("line %d", lines[i]), result)
	}
	return r, nil
}

// readPasswordList reads one password per line, skipping empty lines.
// It returns the passwords and their 1-based line numbers.
func readPasswordList(path string) ([]string, []int, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open password list: %w", err)
	}
	//nolint:errcheck // read-only file
	defer f.Close()

	var (
		passwords []string
		lines     []int
	)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxListLineSize)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		passwords = append(passwords, line)
		lines = append(lines, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read password list: %w", err)
	}
	return passwords, lines, nil
}

// newBreachCounter returns the breach lookup for cfg.
func newBreachCounter(cfg *config.Config, logger *slog.Logger) (analyzer.BreachCounter, error) {
	if cfg.Offline {
		return breach.Disabled, nil
	}
	client, err := breach.NewClient(
		breach.WithEndpoint(cfg.Endpoint),
		breach.WithTimeout(cfg.Timeout),
		breach.WithUserAgent(cfg.UserAgent),
		breach.WithPadding(cfg.Padding),
		breach.WithProxy(cfg.ProxyAddress),
		breach.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("breach lookup enabled", "endpoint", client.Endpoint(), "proxy", cfg.ProxyAddress != "")
	return client, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	return getBoolFlag(cmd, "verbose")
}

// getBoolFlag retrieves a boolean flag from the command or the root's
// persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// buildConfig layers defaults, the config file and explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit config path must exist; the default locations are optional.
	if configPath := config.FindConfigFile(cfg.ConfigFilePath); configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("offline") {
		if cfg.Offline, err = flags.GetBool("offline"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("endpoint") {
		if cfg.Endpoint, err = flags.GetString("endpoint"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-padding") {
		noPadding, err := flags.GetBool("no-padding")
		if err != nil {
			return nil, err
		}
		cfg.Padding = !noPadding
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}

	// A format flag replaces the configured format instead of adding to it.
	jsonSet, markdownSet := flags.Changed("json"), flags.Changed("markdown")
	if jsonSet || markdownSet {
		cfg.JSONReport, cfg.MarkdownReport = false, false
	}
	if jsonSet {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
	}
	if markdownSet {
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("no-color") {
		noColor, err := flags.GetBool("no-color")
		if err != nil {
			return nil, err
		}
		cfg.Color = !noColor
	}

	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.ListFile, err = flags.GetString("list"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates the secure logger writing to w.
func setupLogger(w io.Writer, verbose, jsonFormat bool) *slog.Logger {
	if jsonFormat {
		return log.NewSecureJSONLogger(w, verbose)
	}
	return log.NewSecureLogger(w, verbose)
}

// outputReport writes the report in the configured format to the report
// file or the command's output.
func outputReport(cmd *cobra.Command, cfg *config.Config, r *model.Report) error {
	output := cmd.OutOrStdout()
	toFile := cfg.ReportFile != ""

	if toFile {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports are readable only by the owner
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		//nolint:errcheck // Close error is reported by the write below in practice
		defer f.Close()
		output = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		// color.NoColor is set when stdout is not a terminal or NO_COLOR is set.
		useColor := cfg.Color && !toFile && !color.NoColor
		w = report.NewSimpleWriter(output,
			report.WithColor(useColor),
			report.WithVerbose(cfg.Verbose),
		)
	}

	if _, err := w.Write(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
