package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mateomaralcantara/aipma/aipmatests"
	"github.com/mateomaralcantara/aipma/framework"
	"github.com/mateomaralcantara/aipma/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errTestsFailed = errors.New("one or more tests failed")

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:   "aipma-contract-tests",
		Short: "Contract tests for the AIPMA backend REST API",
		Long: `Runs the AIPMA contract test suite against a live deployment and exits with
status 0 only if at least one test ran and every test passed.

Configuration is read from AIPMA_BASE_URL, AIPMA_TIMEOUT and LOG_LEVEL, or from a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := params.applyTo(cfg, cmd.Flags().Changed("timeout")); err != nil {
				return err
			}

			logger := newLogger(errOut, cfg, &params)
			logger.Debug(cfg.String())

			if !runTests(cmd.Context(), out, logger, cfg, &params, cmd.CommandPath()) {
				return errTestsFailed
			}
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	params.bind(cmd)
	return cmd
}

func newLogger(w io.Writer, cfg *config.Config, params *commandParams) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.LogLevel)
	if params.debugAll {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// runTests runs the suite and prints the report, returning true if the run succeeded.
func runTests(
	ctx context.Context,
	out io.Writer,
	logger *logrus.Logger,
	cfg *config.Config,
	params *commandParams,
	program string,
) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	apiBaseURL := cfg.APIBaseURL()
	fmt.Fprintln(out, "🚀 Starting comprehensive AIPMA Backend API Testing...")
	fmt.Fprintf(out, "📍 Testing against: %s\n", apiBaseURL)
	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, params.filters)

	var harnessLogger framework.Logger = framework.NullLogger()
	if params.debugAll {
		harnessLogger = logger
	}
	harness := framework.NewTestHarness(apiBaseURL, cfg.Timeout, harnessLogger)

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	recorder := framework.NewRecorder(testLogger)
	var filter framework.Filter
	if params.filters.IsDefined() {
		filter = params.filters.AsFilter
	}

	summary := aipmatests.RunTestSuite(ctx, harness, recorder, filter, testLogger)
	ok := recorder.Summarize(out)

	if params.reportFile != "" {
		if err := framework.WriteReportFile(params.reportFile, apiBaseURL, recorder.Outcomes()); err != nil {
			logger.WithError(err).Error("Could not write report")
		} else {
			logger.WithField("file", params.reportFile).Info("Wrote test report")
		}
	}

	if summary.Total == 0 {
		logger.Warn("No tests were run")
	}
	if len(summary.FailedTests) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To run only the failed tests again:")
		fmt.Fprintf(out, "  %s\n", params.rerunCommand(program, cfg, summary.FailedTests))
	}
	return ok
}
