package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mateomaralcantara/aipma/framework"
	"github.com/mateomaralcantara/aipma/internal/config"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
)

type commandParams struct {
	baseURL    string
	timeout    time.Duration
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
	reportFile string
}

func (c *commandParams) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&c.baseURL, "url", "", "base URL of the AIPMA deployment, without /api (overrides AIPMA_BASE_URL)")
	fs.DurationVar(&c.timeout, "timeout", 0, "timeout for each request (overrides AIPMA_TIMEOUT)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.reportFile, "report", "", "write a YAML report of all outcomes to this file")
}

// applyTo overrides configuration loaded from the environment with any flags that were set.
// timeoutSet reports whether --timeout was given explicitly.
func (c *commandParams) applyTo(cfg *config.Config, timeoutSet bool) error {
	if c.baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(c.baseURL, "/")
	}
	if timeoutSet {
		if c.timeout <= 0 {
			return fmt.Errorf("invalid --timeout: must be positive, got %s", c.timeout)
		}
		cfg.Timeout = c.timeout
	}
	return nil
}

// rerunCommand is a shell command line that runs only the named tests again against the same
// deployment.
func (c *commandParams) rerunCommand(program string, cfg *config.Config, failedTests []string) string {
	var b commandBuilder
	b.add(program, "--url", cfg.BaseURL)
	if c.timeout > 0 {
		b.add("--timeout", c.timeout.String())
	}
	b.add("--run", framework.RerunPattern(failedTests))
	if c.debug {
		b.add("--debug")
	}
	if c.debugAll {
		b.add("--debug-all")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
