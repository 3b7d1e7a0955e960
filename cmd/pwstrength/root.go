package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// noPasswordMessage is printed when neither an argument nor the prompt
// produced a password.
const noPasswordMessage = "No password provided. Exiting."

// NewRootCmd creates the root command for pwstrength.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwstrength",
		Short: "Evaluate the strength of a password",
		Long: `pwstrength evaluates the strength of a password on a 0-100 scale.

It reports on length, character variety, sequences and repetitions,
information-theoretic entropy, and whether the password appears in known
data breaches. The breach check sends only the first 5 characters of the
password's SHA-1 hash to the Pwned Passwords range API.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging (secrets are redacted)")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err for the user. A missing password gets the fixed
// message in red.
func printError(w io.Writer, err error) {
	if errors.Is(err, ErrNoPassword) {
		color.New(color.FgRed).Fprintln(w, noPasswordMessage) //nolint:errcheck // nothing to do on failure
		return
	}
	fmt.Fprintln(w, err) //nolint:errcheck // nothing to do on failure
}
